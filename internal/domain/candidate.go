package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryDining is the candidate category the itinerary scheduler treats as
// a meal. Any other category value is treated as a general activity.
const CategoryDining = "Dining"

// Candidate is an externally generated trip experience awaiting scheduling.
// Candidates arrive in batches from the content-generation service; the
// scheduler only ever reads them. Position preserves the generator's ordering,
// which the scheduler depends on for deterministic output.
type Candidate struct {
	ID           uuid.UUID `json:"id"`
	TripID       uuid.UUID `json:"trip_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Duration     string    `json:"duration,omitempty"` // free text, e.g. "2h", "Half Day"
	Description  string    `json:"description,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Approved     bool      `json:"approved"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}
