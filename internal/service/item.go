package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lcollard/tripweaver/internal/domain"
	"github.com/lcollard/tripweaver/internal/repo"
)

// ItemService implements business logic for trip item operations.
// Items are created by the itinerary import (see ItineraryService); this
// service covers reading and pruning the resulting timeline.
type ItemService struct {
	items repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided ItemRepo.
func NewItemService(items repo.ItemRepo) *ItemService {
	return &ItemService{items: items}
}

// ListByTrip returns all items for a trip in timeline order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItemService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error) {
	items, err := s.items.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItemService.ListByTrip: %w", err)
	}
	if items == nil {
		return []domain.TripItem{}, nil
	}
	return items, nil
}

// Delete removes an item by ID, scoped to the given trip.
// Returns domain.ErrNotFound if the item does not exist under the trip.
func (s *ItemService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}
