package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollard/tripweaver/internal/domain"
	"github.com/lcollard/tripweaver/internal/repo"
)

// itemFixture returns a planned activity item for the given trip.
func itemFixture(tripID uuid.UUID) domain.TripItem {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return domain.TripItem{
		TripID:  tripID,
		Type:    domain.ItemTypeActivity,
		Title:   "Tile Museum",
		Notes:   "Morning\nAzulejo collection",
		StartAt: start,
		EndAt:   start.Add(2 * time.Hour),
		Status:  domain.ItemStatusPlanned,
	}
}

func TestItemRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	trip := seedTrip(t, tx)
	r := repo.NewItemRepo(tx)

	input := itemFixture(trip.ID)
	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, domain.ItemTypeActivity, got.Type)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Notes, got.Notes)
	assert.True(t, got.StartAt.Equal(input.StartAt))
	assert.True(t, got.EndAt.Equal(input.EndAt))
	assert.Equal(t, domain.ItemStatusPlanned, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestItemRepo_Create_Lodging(t *testing.T) {
	tx := newTestTx(t)
	trip := seedTrip(t, tx)
	r := repo.NewItemRepo(tx)

	input := itemFixture(trip.ID)
	input.Type = domain.ItemTypeLodging
	input.Title = "Alfama Guesthouse"

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeLodging, got.Type)
}

func TestItemRepo_ListByTrip(t *testing.T) {
	tx := newTestTx(t)
	trip := seedTrip(t, tx)
	r := repo.NewItemRepo(tx)
	ctx := context.Background()

	// Insert out of timeline order to exercise the sort.
	late := itemFixture(trip.ID)
	late.Title = "Fado Restaurant"
	late.StartAt = late.StartAt.Add(9 * time.Hour)
	late.EndAt = late.EndAt.Add(9 * time.Hour)

	_, err := r.Create(ctx, late)
	require.NoError(t, err)
	_, err = r.Create(ctx, itemFixture(trip.ID))
	require.NoError(t, err)

	got, err := r.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Tile Museum", got[0].Title, "items ordered by start time")
	assert.Equal(t, "Fado Restaurant", got[1].Title)
}

func TestItemRepo_ListByTrip_Empty(t *testing.T) {
	tx := newTestTx(t)
	trip := seedTrip(t, tx)
	r := repo.NewItemRepo(tx)

	got, err := r.ListByTrip(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestItemRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	trip := seedTrip(t, tx)
	r := repo.NewItemRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, itemFixture(trip.ID))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, trip.ID, created.ID))

	remaining, err := r.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestItemRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	trip := seedTrip(t, tx)
	r := repo.NewItemRepo(tx)

	err := r.Delete(context.Background(), trip.ID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
