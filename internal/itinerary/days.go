// Package itinerary implements the pace-driven itinerary scheduler.
//
// The scheduler is a pure, synchronous computation: given a trip date range,
// a pace value, and an ordered list of approved candidates, Build returns a
// chronologically ordered draft schedule. It performs no I/O, keeps no state
// between runs, and never fails — malformed inputs degrade to documented
// fallbacks and the run always completes with a (possibly empty) schedule.
package itinerary

import "time"

// dayPosition tags a day by where it falls in the trip.
// A day is exactly one of first/last/core; on a single-day trip the day
// counts as first, never last.
type dayPosition int

const (
	dayFirst dayPosition = iota
	dayLast
	dayCore
)

// Day is one calendar date of the trip, tagged by position.
type Day struct {
	Date     time.Time
	position dayPosition
}

// ExpandDays returns one Day per calendar date from start to end, inclusive.
// Iteration is calendar-safe across month and year boundaries; time-of-day
// components of the inputs are discarded.
//
// A zero start or end, or an end before start, falls back to a single day of
// "now" rather than an error: the scheduler always produces some schedule.
func ExpandDays(start, end time.Time) []Day {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return []Day{{Date: midnight(time.Now()), position: dayFirst}}
	}

	var days []Day
	for d := midnight(start); !d.After(midnight(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d})
	}

	for i := range days {
		switch {
		case i == 0:
			days[i].position = dayFirst
		case i == len(days)-1:
			days[i].position = dayLast
		default:
			days[i].position = dayCore
		}
	}
	return days
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// at combines a day's date with an hour/minute wall-clock time.
func (d Day) at(hour, minute int) time.Time {
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), hour, minute, 0, 0, d.Date.Location())
}

// coreDays returns the subsequence of days tagged core, preserving order.
func coreDays(days []Day) []Day {
	var core []Day
	for _, d := range days {
		if d.position == dayCore {
			core = append(core, d)
		}
	}
	return core
}
