package itinerary

import "github.com/lcollard/tripweaver/internal/domain"

// Overflow placement times. Extra activities land in the late afternoon,
// extra dining in the late evening, so overflow never collides with a
// template slot on the same day.
const (
	overflowActivityHour   = 16
	overflowActivityMinute = 30
	overflowDiningHour     = 21
	overflowDiningMinute   = 0
)

// distributeOverflow places whatever the allocator left in the queues onto
// the trip's core days, cycling round-robin. Trips too short to have core
// days (one or two days) cycle over the full day list instead.
//
// The day cursor is shared between the activity pass and the dining pass:
// the dining pass continues from whichever day the activity pass stopped at.
// Downstream consumers observe that interleaving, so the cursor must not be
// reset between passes.
func distributeOverflow(days []Day, dining, activity *queue) []domain.ScheduledItem {
	targets := coreDays(days)
	if len(targets) == 0 {
		targets = days
	}

	var out []domain.ScheduledItem
	cursor := 0
	for !activity.empty() {
		d := targets[cursor%len(targets)]
		out = append(out, assign(activity.pop(), d.at(overflowActivityHour, overflowActivityMinute), "Extra Activity"))
		cursor++
	}
	for !dining.empty() {
		d := targets[cursor%len(targets)]
		out = append(out, assign(dining.pop(), d.at(overflowDiningHour, overflowDiningMinute), "Late Night Bite"))
		cursor++
	}
	return out
}
