package itinerary

// Pace thresholds. Each threshold unlocks one extra demand on every core day.
const (
	paceLunch     = 35
	paceAfternoon = 60
	paceNightlife = 80
)

// slotCategory is the kind of candidate a slot asks for. The allocator
// prefers the matching queue but falls back to the other when it runs dry.
type slotCategory int

const (
	wantDining slotCategory = iota
	wantActivity
)

// slot is an ephemeral demand for one candidate at a fixed day and time.
// Lower priority values are filled first across the whole trip.
type slot struct {
	day      Day
	hour     int
	minute   int
	category slotCategory
	priority int
	label    string
}

// planSlots generates the full demand list for the trip: one pass per day,
// first match wins on position. The first day always gets only the welcome
// dinner — even on a single-day trip, and even though that means a two-day
// trip produces no core-day demands at any pace. That short-trip behavior is
// intentional and callers rely on it.
func planSlots(days []Day, pace int) []slot {
	var slots []slot
	for _, d := range days {
		switch d.position {
		case dayFirst:
			slots = append(slots, slot{day: d, hour: 19, category: wantDining, priority: 1, label: "Welcome Dinner"})
		case dayLast:
			slots = append(slots, slot{day: d, hour: 10, category: wantActivity, priority: 1, label: "Farewell Activity"})
		case dayCore:
			slots = append(slots,
				slot{day: d, hour: 10, category: wantActivity, priority: 1, label: "Morning Exploration"},
				slot{day: d, hour: 19, minute: 30, category: wantDining, priority: 2, label: "Dinner"},
			)
			if pace >= paceLunch {
				slots = append(slots, slot{day: d, hour: 13, category: wantDining, priority: 3, label: "Lunch"})
			}
			if pace >= paceAfternoon {
				slots = append(slots, slot{day: d, hour: 15, category: wantActivity, priority: 4, label: "Afternoon Adventure"})
			}
			if pace >= paceNightlife {
				slots = append(slots, slot{day: d, hour: 21, minute: 30, category: wantActivity, priority: 5, label: "Nightlife"})
			}
		}
	}
	return slots
}
