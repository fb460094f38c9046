package domain

import "time"

// ScheduledItem is a Candidate bound to a concrete date and time — the
// output unit of the itinerary scheduler. TimeHint is the human-readable
// label of the slot the item landed in (e.g. "Welcome Dinner").
type ScheduledItem struct {
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Duration     string    `json:"duration,omitempty"`
	Description  string    `json:"description,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	AssignedAt   time.Time `json:"assigned_at"`
	TimeHint     string    `json:"time_hint"`
}

// ImportFailure records a single scheduled item that could not be persisted
// to the trip item store during an import batch.
type ImportFailure struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ImportReport aggregates the per-item outcomes of an import batch.
// A failed item never aborts the batch; callers inspect Failed to see
// which creations, if any, need attention.
type ImportReport struct {
	Imported []TripItem      `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}
