package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveDays() []Day {
	return ExpandDays(date(2025, time.June, 1), date(2025, time.June, 5))
}

// labelsByDay groups slot labels by day index for easier assertions.
func labelsByDay(days []Day, slots []slot) map[int][]string {
	idx := make(map[time.Time]int, len(days))
	for i, d := range days {
		idx[d.Date] = i
	}
	out := make(map[int][]string)
	for _, s := range slots {
		i := idx[s.day.Date]
		out[i] = append(out[i], s.label)
	}
	return out
}

func TestPlanSlots_LowPaceCoreDays(t *testing.T) {
	days := fiveDays()
	slots := planSlots(days, 20)

	byDay := labelsByDay(days, slots)
	assert.Equal(t, []string{"Welcome Dinner"}, byDay[0])
	assert.Equal(t, []string{"Farewell Activity"}, byDay[4])
	for _, i := range []int{1, 2, 3} {
		assert.Equal(t, []string{"Morning Exploration", "Dinner"}, byDay[i], "core day %d", i)
	}
}

func TestPlanSlots_HighPaceCoreDays(t *testing.T) {
	days := fiveDays()
	slots := planSlots(days, 90)

	byDay := labelsByDay(days, slots)
	want := []string{"Morning Exploration", "Dinner", "Lunch", "Afternoon Adventure", "Nightlife"}
	for _, i := range []int{1, 2, 3} {
		assert.Equal(t, want, byDay[i], "core day %d", i)
	}
	// 3 core days x 5 + first + last.
	assert.Len(t, slots, 17)
}

func TestPlanSlots_PaceThresholds(t *testing.T) {
	days := fiveDays()

	tests := []struct {
		pace    int
		perCore int
	}{
		{0, 2},
		{34, 2},
		{35, 3},
		{59, 3},
		{60, 4},
		{79, 4},
		{80, 5},
		{100, 5},
	}
	for _, tt := range tests {
		slots := planSlots(days, tt.pace)
		assert.Len(t, slots, 3*tt.perCore+2, "pace %d", tt.pace)
	}
}

func TestPlanSlots_SingleDayTripGetsOnlyWelcomeDinner(t *testing.T) {
	days := ExpandDays(date(2025, time.June, 1), date(2025, time.June, 1))

	slots := planSlots(days, 100)

	require.Len(t, slots, 1)
	assert.Equal(t, "Welcome Dinner", slots[0].label)
	assert.Equal(t, wantDining, slots[0].category)
	assert.Equal(t, 19, slots[0].hour)
}

// A two-day trip has no core days, so even the highest pace produces only
// the welcome dinner and the farewell activity.
func TestPlanSlots_TwoDayTripIgnoresPace(t *testing.T) {
	days := ExpandDays(date(2025, time.June, 1), date(2025, time.June, 2))

	slots := planSlots(days, 100)

	require.Len(t, slots, 2)
	assert.Equal(t, "Welcome Dinner", slots[0].label)
	assert.Equal(t, "Farewell Activity", slots[1].label)
}

func TestPlanSlots_SlotTimes(t *testing.T) {
	days := fiveDays()
	slots := planSlots(days, 90)

	times := make(map[string][2]int)
	for _, s := range slots {
		times[s.label] = [2]int{s.hour, s.minute}
	}
	assert.Equal(t, [2]int{19, 0}, times["Welcome Dinner"])
	assert.Equal(t, [2]int{10, 0}, times["Farewell Activity"])
	assert.Equal(t, [2]int{10, 0}, times["Morning Exploration"])
	assert.Equal(t, [2]int{19, 30}, times["Dinner"])
	assert.Equal(t, [2]int{13, 0}, times["Lunch"])
	assert.Equal(t, [2]int{15, 0}, times["Afternoon Adventure"])
	assert.Equal(t, [2]int{21, 30}, times["Nightlife"])
}
