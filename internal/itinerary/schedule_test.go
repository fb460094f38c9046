package itinerary_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollard/tripweaver/internal/domain"
	"github.com/lcollard/tripweaver/internal/itinerary"
)

var (
	tripStart = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	tripEnd   = time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
)

// mixedCandidates returns n candidates alternating dining and activity,
// titled c0..c(n-1) so tests can track individual items through the pipeline.
func mixedCandidates(n int) []domain.Candidate {
	out := make([]domain.Candidate, n)
	for i := range out {
		category := "Sightseeing"
		if i%2 == 0 {
			category = domain.CategoryDining
		}
		out[i] = domain.Candidate{
			Title:    fmt.Sprintf("c%d", i),
			Category: category,
			Duration: "2h",
		}
	}
	return out
}

func titleCounts(items []domain.ScheduledItem) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Title]++
	}
	return counts
}

func TestBuild_EveryCandidateScheduledExactlyOnce(t *testing.T) {
	candidates := mixedCandidates(25)

	got := itinerary.Build(tripStart, tripEnd, 90, candidates)

	require.Len(t, got, 25)
	counts := titleCounts(got)
	for _, c := range candidates {
		assert.Equal(t, 1, counts[c.Title], "candidate %s", c.Title)
	}
}

func TestBuild_OutputChronologicallySorted(t *testing.T) {
	got := itinerary.Build(tripStart, tripEnd, 90, mixedCandidates(25))

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].AssignedAt.Before(got[i-1].AssignedAt),
			"item %d (%s) is before item %d (%s)", i, got[i].AssignedAt, i-1, got[i-1].AssignedAt)
	}
}

func TestBuild_FirstDayGetsOnlyWelcomeDinner(t *testing.T) {
	got := itinerary.Build(tripStart, tripEnd, 90, mixedCandidates(25))

	var firstDay []domain.ScheduledItem
	for _, item := range got {
		if item.AssignedAt.Day() == 1 {
			firstDay = append(firstDay, item)
		}
	}
	require.Len(t, firstDay, 1)
	assert.Equal(t, "Welcome Dinner", firstDay[0].TimeHint)
	assert.Equal(t, 19, firstDay[0].AssignedAt.Hour())
}

func TestBuild_LastDayGetsOnlyFarewellActivity(t *testing.T) {
	got := itinerary.Build(tripStart, tripEnd, 90, mixedCandidates(25))

	var lastDay []domain.ScheduledItem
	for _, item := range got {
		if item.AssignedAt.Day() == 5 {
			lastDay = append(lastDay, item)
		}
	}
	require.Len(t, lastDay, 1)
	assert.Equal(t, "Farewell Activity", lastDay[0].TimeHint)
}

// 25 candidates against 17 template slots (3 core days x 5 + first + last)
// leaves exactly 8 for overflow, cycling across the 3 core days at the fixed
// overflow times.
func TestBuild_OverflowBeyondTemplateCapacity(t *testing.T) {
	got := itinerary.Build(tripStart, tripEnd, 90, mixedCandidates(25))

	var overflow []domain.ScheduledItem
	for _, item := range got {
		if item.TimeHint == "Extra Activity" || item.TimeHint == "Late Night Bite" {
			overflow = append(overflow, item)
		}
	}
	require.Len(t, overflow, 8)
	for _, item := range overflow {
		day := item.AssignedAt.Day()
		assert.True(t, day >= 2 && day <= 4, "overflow must land on a core day, got day %d", day)
		switch item.TimeHint {
		case "Extra Activity":
			assert.Equal(t, 16, item.AssignedAt.Hour())
		case "Late Night Bite":
			assert.Equal(t, 21, item.AssignedAt.Hour())
		}
	}
}

// Priority-1 slots across the whole trip are filled before any priority-2
// slot: with only three candidates on a five-day trip, the welcome dinner,
// the farewell activity, and the three morning slots are served first.
func TestBuild_RoundRobinByPriorityAcrossDays(t *testing.T) {
	got := itinerary.Build(tripStart, tripEnd, 90, mixedCandidates(5))

	hints := make(map[string]int)
	for _, item := range got {
		hints[item.TimeHint]++
	}
	assert.Equal(t, 1, hints["Welcome Dinner"])
	assert.Equal(t, 1, hints["Farewell Activity"])
	assert.Equal(t, 3, hints["Morning Exploration"])
	assert.Zero(t, hints["Dinner"], "no priority-2 slot may fill before all priority-1 slots")
}

func TestBuild_CategoryFallbackWhenQueueEmpty(t *testing.T) {
	// All dining, no activities: activity slots must fall back to the
	// dining queue rather than dropping candidates.
	candidates := []domain.Candidate{
		{Title: "m1", Category: domain.CategoryDining},
		{Title: "m2", Category: domain.CategoryDining},
		{Title: "m3", Category: domain.CategoryDining},
	}

	got := itinerary.Build(tripStart, tripEnd, 20, candidates)

	require.Len(t, got, 3)
	counts := titleCounts(got)
	assert.Len(t, counts, 3)
}

func TestBuild_EmptySelectionYieldsEmptySchedule(t *testing.T) {
	got := itinerary.Build(tripStart, tripEnd, 90, nil)

	assert.Empty(t, got)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	candidates := mixedCandidates(10)
	want := make([]domain.Candidate, len(candidates))
	copy(want, candidates)

	itinerary.Build(tripStart, tripEnd, 90, candidates)

	assert.Equal(t, want, candidates)
}

func TestBuild_Deterministic(t *testing.T) {
	candidates := mixedCandidates(25)

	first := itinerary.Build(tripStart, tripEnd, 90, candidates)
	second := itinerary.Build(tripStart, tripEnd, 90, candidates)

	assert.Equal(t, first, second)
}
