// Package domain contains the core data types for the Tripweaver application.
// It depends on nothing inside the module and is imported by every other
// internal package (itinerary, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned group trip over an inclusive date range.
// A trip is the top-level aggregate; candidates and items belong to a trip.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil while the return date is still open
	Pace        int        `json:"pace"`               // 0..100, how full each core day of the itinerary should be
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
