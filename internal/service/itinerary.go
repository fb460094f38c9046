package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/lcollard/tripweaver/internal/domain"
	"github.com/lcollard/tripweaver/internal/itinerary"
	"github.com/lcollard/tripweaver/internal/repo"
)

// ItineraryService drives the pace-driven scheduler and the import of its
// output into the trip item store. Scheduling itself is pure and never fails;
// only loading inputs or persisting results can return an error.
type ItineraryService struct {
	trips      repo.TripRepo
	candidates repo.CandidateRepo
	items      repo.ItemRepo
	log        *slog.Logger
}

// NewItineraryService constructs an ItineraryService backed by the provided
// repos. The logger records per-item import failures.
func NewItineraryService(trips repo.TripRepo, candidates repo.CandidateRepo, items repo.ItemRepo, log *slog.Logger) *ItineraryService {
	if log == nil {
		log = slog.Default()
	}
	return &ItineraryService{trips: trips, candidates: candidates, items: items, log: log}
}

// Preview builds a draft schedule for the trip's approved candidates without
// persisting anything. A non-nil pace overrides the trip's stored pace for
// this run only. Always returns a non-nil slice on success.
func (s *ItineraryService) Preview(ctx context.Context, tripID uuid.UUID, pace *int) ([]domain.ScheduledItem, error) {
	trip, approved, err := s.loadInputs(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Preview: %w", err)
	}

	scheduled := itinerary.Build(trip.StartDate, endOrZero(trip), effectivePace(trip, pace), approved)
	if scheduled == nil {
		scheduled = []domain.ScheduledItem{}
	}
	return scheduled, nil
}

// Import builds the schedule and persists each scheduled item as a trip item.
// Creations run concurrently; a failed item is logged and recorded in the
// report without aborting the rest of the batch. Transient failures are
// retried with a short capped backoff before being reported.
func (s *ItineraryService) Import(ctx context.Context, tripID uuid.UUID, pace *int) (domain.ImportReport, error) {
	trip, approved, err := s.loadInputs(ctx, tripID)
	if err != nil {
		return domain.ImportReport{}, fmt.Errorf("service.ItineraryService.Import: %w", err)
	}

	scheduled := itinerary.Build(trip.StartDate, endOrZero(trip), effectivePace(trip, pace), approved)

	// One outcome slot per item, indexed so the report preserves schedule
	// order regardless of goroutine completion order.
	type outcome struct {
		item domain.TripItem
		err  error
	}
	outcomes := make([]outcome, len(scheduled))

	var wg sync.WaitGroup
	for i, sc := range scheduled {
		wg.Add(1)
		go func(i int, sc domain.ScheduledItem) {
			defer wg.Done()
			item := itemFromScheduled(tripID, sc)

			backoff := retry.WithMaxRetries(2, retry.NewFibonacci(100*time.Millisecond))
			err := retry.Do(ctx, backoff, func(ctx context.Context) error {
				created, err := s.items.Create(ctx, item)
				if err != nil {
					return retry.RetryableError(err)
				}
				outcomes[i].item = created
				return nil
			})
			outcomes[i].err = err
		}(i, sc)
	}
	wg.Wait()

	report := domain.ImportReport{Imported: []domain.TripItem{}, Failed: []domain.ImportFailure{}}
	for i, o := range outcomes {
		if o.err != nil {
			s.log.ErrorContext(ctx, "itinerary import: item creation failed",
				"trip_id", tripID,
				"title", scheduled[i].Title,
				"error", o.err,
			)
			report.Failed = append(report.Failed, domain.ImportFailure{Title: scheduled[i].Title, Reason: o.err.Error()})
			continue
		}
		report.Imported = append(report.Imported, o.item)
	}
	return report, nil
}

// loadInputs fetches the trip and its approved candidates.
func (s *ItineraryService) loadInputs(ctx context.Context, tripID uuid.UUID) (domain.Trip, []domain.Candidate, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	approved, err := s.candidates.ListByTrip(ctx, tripID, true)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	return trip, approved, nil
}

// effectivePace resolves the pace for a scheduler run: an explicit override
// wins over the trip's stored pace. Out-of-range overrides are clamped rather
// than rejected — a preview should never fail on a slider value.
func effectivePace(trip domain.Trip, override *int) int {
	pace := trip.Pace
	if override != nil {
		pace = *override
	}
	if pace < 0 {
		return 0
	}
	if pace > 100 {
		return 100
	}
	return pace
}

// endOrZero returns the trip's end date, or the zero time when the return
// date is still open — the scheduler falls back to a single-day plan.
func endOrZero(trip domain.Trip) time.Time {
	if trip.EndDate == nil {
		return time.Time{}
	}
	return *trip.EndDate
}

// itemFromScheduled converts a scheduled item into the trip item record the
// store accepts. The store knows only a fixed set of item types, so dining
// lands under the generic activity type; lodging is inferred from the
// category or title.
func itemFromScheduled(tripID uuid.UUID, sc domain.ScheduledItem) domain.TripItem {
	start := sc.AssignedAt
	end := start.Add(time.Duration(itinerary.ParseDuration(sc.Duration)) * time.Minute)

	return domain.TripItem{
		TripID:  tripID,
		Type:    inferItemType(sc),
		Title:   sc.Title,
		Notes:   itemNotes(sc),
		StartAt: start,
		EndAt:   end,
		Status:  domain.ItemStatusPlanned,
	}
}

// inferItemType maps a scheduled item onto the store's type set.
func inferItemType(sc domain.ScheduledItem) domain.ItemType {
	haystack := strings.ToLower(sc.Category + " " + sc.Title)
	for _, kw := range []string{"lodging", "hotel", "accommodation", "hostel"} {
		if strings.Contains(haystack, kw) {
			return domain.ItemTypeLodging
		}
	}
	return domain.ItemTypeActivity
}

// itemNotes folds the scheduler's context into the item's free-text notes.
func itemNotes(sc domain.ScheduledItem) string {
	parts := []string{sc.TimeHint}
	if sc.Description != "" {
		parts = append(parts, sc.Description)
	}
	if sc.Neighborhood != "" {
		parts = append(parts, "Neighborhood: "+sc.Neighborhood)
	}
	return strings.Join(parts, "\n")
}
