package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollard/tripweaver/internal/domain"
)

func activities(titles ...string) []domain.Candidate {
	out := make([]domain.Candidate, len(titles))
	for i, title := range titles {
		out[i] = domain.Candidate{Title: title, Category: "Outdoors"}
	}
	return out
}

func meals(titles ...string) []domain.Candidate {
	out := make([]domain.Candidate, len(titles))
	for i, title := range titles {
		out[i] = domain.Candidate{Title: title, Category: domain.CategoryDining}
	}
	return out
}

func TestDistributeOverflow_CyclesCoreDays(t *testing.T) {
	days := fiveDays() // core days are June 2, 3, 4

	got := distributeOverflow(days, newQueue(nil), newQueue(activities("a1", "a2", "a3", "a4")))

	require.Len(t, got, 4)
	assert.Equal(t, 2, got[0].AssignedAt.Day())
	assert.Equal(t, 3, got[1].AssignedAt.Day())
	assert.Equal(t, 4, got[2].AssignedAt.Day())
	assert.Equal(t, 2, got[3].AssignedAt.Day(), "fourth item wraps back to the first core day")
	for _, item := range got {
		assert.Equal(t, "Extra Activity", item.TimeHint)
		assert.Equal(t, 16, item.AssignedAt.Hour())
		assert.Equal(t, 30, item.AssignedAt.Minute())
	}
}

// The day cursor carries over from the activity pass into the dining pass:
// two activities land on core days 0 and 1, so the first leftover meal lands
// on core day 2, not core day 0.
func TestDistributeOverflow_SharedCursorAcrossPasses(t *testing.T) {
	days := fiveDays()

	got := distributeOverflow(days, newQueue(meals("m1", "m2")), newQueue(activities("a1", "a2")))

	require.Len(t, got, 4)
	assert.Equal(t, "a1", got[0].Title)
	assert.Equal(t, 2, got[0].AssignedAt.Day())
	assert.Equal(t, "a2", got[1].Title)
	assert.Equal(t, 3, got[1].AssignedAt.Day())

	assert.Equal(t, "m1", got[2].Title)
	assert.Equal(t, 4, got[2].AssignedAt.Day())
	assert.Equal(t, 21, got[2].AssignedAt.Hour())
	assert.Equal(t, "Late Night Bite", got[2].TimeHint)
	assert.Equal(t, "m2", got[3].Title)
	assert.Equal(t, 2, got[3].AssignedAt.Day(), "dining pass wraps from where the activity pass stopped")
}

func TestDistributeOverflow_NoCoreDaysUsesAllDays(t *testing.T) {
	days := ExpandDays(date(2025, time.June, 1), date(2025, time.June, 2))

	got := distributeOverflow(days, newQueue(nil), newQueue(activities("a1", "a2", "a3")))

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].AssignedAt.Day())
	assert.Equal(t, 2, got[1].AssignedAt.Day())
	assert.Equal(t, 1, got[2].AssignedAt.Day())
}

func TestDistributeOverflow_EmptyQueues(t *testing.T) {
	got := distributeOverflow(fiveDays(), newQueue(nil), newQueue(nil))

	assert.Empty(t, got)
}
