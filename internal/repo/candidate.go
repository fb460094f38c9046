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

// CandidateRepo defines the persistence operations for Candidates — the
// externally generated experiences a trip's travelers curate before
// scheduling.
type CandidateRepo interface {
	// CreateBatch inserts a batch of candidates for a trip in a single
	// round-trip, assigning positions after the trip's current maximum so
	// generator order is preserved across batches.
	CreateBatch(ctx context.Context, tripID uuid.UUID, candidates []domain.Candidate) ([]domain.Candidate, error)

	// ListByTrip returns a trip's candidates ordered by position ascending.
	// When approvedOnly is true, only approved candidates are returned.
	ListByTrip(ctx context.Context, tripID uuid.UUID, approvedOnly bool) ([]domain.Candidate, error)

	// SetApproved toggles a candidate's approval flag.
	// Returns domain.ErrNotFound if the candidate does not exist under the trip.
	SetApproved(ctx context.Context, tripID, candidateID uuid.UUID, approved bool) (domain.Candidate, error)

	// Delete removes a candidate. Returns domain.ErrNotFound if it does not
	// exist under the trip.
	Delete(ctx context.Context, tripID, candidateID uuid.UUID) error
}

// pgCandidateRepo is the Postgres implementation of CandidateRepo.
type pgCandidateRepo struct {
	db db
}

// NewCandidateRepo constructs a CandidateRepo backed by the provided db connection.
func NewCandidateRepo(db db) CandidateRepo {
	return &pgCandidateRepo{db: db}
}

// CreateBatch inserts candidates using UNNEST so one statement covers the
// whole batch. Positions continue from the trip's current maximum.
func (r *pgCandidateRepo) CreateBatch(ctx context.Context, tripID uuid.UUID, candidates []domain.Candidate) ([]domain.Candidate, error) {
	if len(candidates) == 0 {
		return []domain.Candidate{}, nil
	}

	const q = `
		INSERT INTO candidates (trip_id, title, category, duration, description, neighborhood, position)
		SELECT @trip_id, t.title, t.category, t.duration, t.description, t.neighborhood,
		       coalesce((SELECT max(position) FROM candidates WHERE trip_id = @trip_id), -1) + t.ord
		FROM unnest(@titles::text[], @categories::text[], @durations::text[], @descriptions::text[], @neighborhoods::text[])
		     WITH ORDINALITY AS t(title, category, duration, description, neighborhood, ord)
		RETURNING id, trip_id, title, category, duration, description, neighborhood, approved, position, created_at`

	titles := make([]string, len(candidates))
	categories := make([]string, len(candidates))
	durations := make([]string, len(candidates))
	descriptions := make([]string, len(candidates))
	neighborhoods := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.Title
		categories[i] = c.Category
		durations[i] = c.Duration
		descriptions[i] = c.Description
		neighborhoods[i] = c.Neighborhood
	}

	args := pgx.NamedArgs{
		"trip_id":       tripID,
		"titles":        titles,
		"categories":    categories,
		"durations":     durations,
		"descriptions":  descriptions,
		"neighborhoods": neighborhoods,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.CandidateRepo.CreateBatch: %w", err)
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CandidateRepo.CreateBatch: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CandidateRepo.CreateBatch: rows: %w", err)
	}

	return out, nil
}

// ListByTrip returns candidates in generator order (position ascending).
func (r *pgCandidateRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, approvedOnly bool) ([]domain.Candidate, error) {
	const q = `
		SELECT id, trip_id, title, category, duration, description, neighborhood, approved, position, created_at
		FROM candidates
		WHERE trip_id = @trip_id AND (NOT @approved_only OR approved)
		ORDER BY position ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "approved_only": approvedOnly})
	if err != nil {
		return nil, fmt.Errorf("repo.CandidateRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CandidateRepo.ListByTrip: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CandidateRepo.ListByTrip: rows: %w", err)
	}

	return out, nil
}

// SetApproved toggles the approval flag, scoped to the trip.
func (r *pgCandidateRepo) SetApproved(ctx context.Context, tripID, candidateID uuid.UUID, approved bool) (domain.Candidate, error) {
	const q = `
		UPDATE candidates
		SET approved = @approved
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, title, category, duration, description, neighborhood, approved, position, created_at`

	args := pgx.NamedArgs{"id": candidateID, "trip_id": tripID, "approved": approved}

	c, err := scanCandidate(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("repo.CandidateRepo.SetApproved: %w", err)
	}
	return c, nil
}

// Delete removes a candidate, scoped to the trip.
func (r *pgCandidateRepo) Delete(ctx context.Context, tripID, candidateID uuid.UUID) error {
	const q = `DELETE FROM candidates WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": candidateID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.CandidateRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CandidateRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCandidate maps a single database row into a domain.Candidate.
func scanCandidate(s scanner) (domain.Candidate, error) {
	var (
		c  domain.Candidate
		id pgtype.UUID
		tr pgtype.UUID
	)

	err := s.Scan(&id, &tr, &c.Title, &c.Category, &c.Duration, &c.Description, &c.Neighborhood, &c.Approved, &c.Position, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Candidate{}, domain.ErrNotFound
		}
		return domain.Candidate{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.TripID = uuid.UUID(tr.Bytes)
	return c, nil
}
