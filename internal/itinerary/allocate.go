package itinerary

import (
	"sort"
	"time"

	"github.com/lcollard/tripweaver/internal/domain"
)

// allocate fills slots from the two queues and returns the assigned items.
//
// Slots are processed ascending by priority, then by date. Filling every
// day's priority-1 slot before any day's priority-2 slot spreads the supply
// evenly across the trip instead of packing the earliest days full and
// leaving the rest empty.
//
// Each slot pops the front of its preferred queue, falling back to the other
// queue when the preferred one is empty. A slot with both queues empty is
// dropped — the normal terminal state once all candidates are placed.
func allocate(slots []slot, dining, activity *queue) []domain.ScheduledItem {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].priority != slots[j].priority {
			return slots[i].priority < slots[j].priority
		}
		return slots[i].day.Date.Before(slots[j].day.Date)
	})

	var out []domain.ScheduledItem
	for _, s := range slots {
		preferred, fallback := dining, activity
		if s.category == wantActivity {
			preferred, fallback = activity, dining
		}

		var c domain.Candidate
		switch {
		case !preferred.empty():
			c = preferred.pop()
		case !fallback.empty():
			c = fallback.pop()
		default:
			continue
		}

		out = append(out, assign(c, s.day.at(s.hour, s.minute), s.label))
	}
	return out
}

// assign binds a candidate to a concrete time, producing a scheduled item.
func assign(c domain.Candidate, at time.Time, label string) domain.ScheduledItem {
	return domain.ScheduledItem{
		Title:        c.Title,
		Category:     c.Category,
		Duration:     c.Duration,
		Description:  c.Description,
		Neighborhood: c.Neighborhood,
		AssignedAt:   at,
		TimeHint:     label,
	}
}
