package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/lcollard/tripweaver/internal/domain"
)

// ItemRepo is the trip item store: the persistence operations for the
// concrete timeline entries an itinerary import creates.
type ItemRepo interface {
	// Create inserts a new trip item and returns the persisted record.
	Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error)

	// ListByTrip returns a trip's items ordered by start_at ascending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error)

	// Delete removes an item. Returns domain.ErrNotFound if it does not
	// exist under the trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

// Create inserts a new item row and returns the full persisted record.
func (r *pgItemRepo) Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	const q = `
		INSERT INTO trip_items (trip_id, type, title, notes, start_at, end_at, status)
		VALUES (@trip_id, @type, @title, @notes, @start_at, @end_at, @status)
		RETURNING id, trip_id, type, title, notes, start_at, end_at, status, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":  item.TripID,
		"type":     string(item.Type),
		"title":    item.Title,
		"notes":    item.Notes,
		"start_at": item.StartAt,
		"end_at":   item.EndAt,
		"status":   string(item.Status),
	}

	result, err := scanItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.ItemRepo.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns items in timeline order.
func (r *pgItemRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error) {
	const q = `
		SELECT id, trip_id, type, title, notes, start_at, end_at, status, created_at, updated_at
		FROM trip_items
		WHERE trip_id = @trip_id
		ORDER BY start_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var items []domain.TripItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListByTrip: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByTrip: rows: %w", err)
	}

	return items, nil
}

// Delete removes an item, scoped to the trip.
func (r *pgItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM trip_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItem maps a single database row into a domain.TripItem.
func scanItem(s scanner) (domain.TripItem, error) {
	var (
		item   domain.TripItem
		id     pgtype.UUID
		tr     pgtype.UUID
		typ    string
		status string
	)

	err := s.Scan(&id, &tr, &typ, &item.Title, &item.Notes, &item.StartAt, &item.EndAt, &status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripItem{}, domain.ErrNotFound
		}
		return domain.TripItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tr.Bytes)
	item.Type = domain.ItemType(typ)
	item.Status = domain.ItemStatus(status)
	return item, nil
}
