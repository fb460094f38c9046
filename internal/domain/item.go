package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is the kind of a persisted trip item. The store recognizes only
// a fixed small set of types, so dining experiences are recorded under
// ItemTypeActivity rather than a type of their own.
type ItemType string

const (
	ItemTypeActivity ItemType = "activity"
	ItemTypeLodging  ItemType = "lodging"
)

// ItemStatus tracks the booking state of a trip item.
type ItemStatus string

const (
	ItemStatusPlanned   ItemStatus = "planned"
	ItemStatusBooked    ItemStatus = "booked"
	ItemStatusCancelled ItemStatus = "cancelled"
)

// TripItem is a persisted entry on a trip's timeline — the record the
// itinerary import step creates for each scheduled item.
type TripItem struct {
	ID        uuid.UUID  `json:"id"`
	TripID    uuid.UUID  `json:"trip_id"`
	Type      ItemType   `json:"type"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	StartAt   time.Time  `json:"start_at"`
	EndAt     time.Time  `json:"end_at"`
	Status    ItemStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
