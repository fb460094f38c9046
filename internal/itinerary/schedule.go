package itinerary

import (
	"sort"
	"time"

	"github.com/lcollard/tripweaver/internal/domain"
)

// Build runs the full scheduling pipeline: expand the date range, classify
// the candidates, generate the slot template for the given pace, fill slots
// by priority, distribute any overflow, and sort the result chronologically.
//
// Build is deterministic: identical inputs (including candidate order)
// produce identical output. It never returns an error — bad dates fall back
// to a single day, and an empty candidate list yields an empty schedule.
func Build(start, end time.Time, pace int, candidates []domain.Candidate) []domain.ScheduledItem {
	days := ExpandDays(start, end)

	diningItems, activityItems := Classify(candidates)
	dining := newQueue(diningItems)
	activity := newQueue(activityItems)

	scheduled := allocate(planSlots(days, pace), dining, activity)
	scheduled = append(scheduled, distributeOverflow(days, dining, activity)...)

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].AssignedAt.Before(scheduled[j].AssignedAt)
	})
	return scheduled
}
