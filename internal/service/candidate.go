package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lcollard/tripweaver/internal/domain"
	"github.com/lcollard/tripweaver/internal/repo"
)

// CandidateService implements business logic for Candidate operations.
// It holds the trip repo as well because candidate intake must verify the
// parent trip exists before writing anything.
type CandidateService struct {
	trips      repo.TripRepo
	candidates repo.CandidateRepo
}

// NewCandidateService constructs a CandidateService backed by the provided repos.
func NewCandidateService(trips repo.TripRepo, candidates repo.CandidateRepo) *CandidateService {
	return &CandidateService{trips: trips, candidates: candidates}
}

// CreateBatch takes a batch of generated candidates for a trip.
// Every candidate must have a non-empty title; the batch is all-or-nothing.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *CandidateService) CreateBatch(ctx context.Context, tripID uuid.UUID, candidates []domain.Candidate) ([]domain.Candidate, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.CandidateService.CreateBatch: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: at least one candidate is required", domain.ErrValidation)
	}
	for i, c := range candidates {
		if strings.TrimSpace(c.Title) == "" {
			return nil, fmt.Errorf("%w: candidate %d: title is required", domain.ErrValidation, i)
		}
	}

	result, err := s.candidates.CreateBatch(ctx, tripID, candidates)
	if err != nil {
		return nil, fmt.Errorf("service.CandidateService.CreateBatch: %w", err)
	}
	return result, nil
}

// ListByTrip returns a trip's candidates in generator order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CandidateService) ListByTrip(ctx context.Context, tripID uuid.UUID, approvedOnly bool) ([]domain.Candidate, error) {
	candidates, err := s.candidates.ListByTrip(ctx, tripID, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("service.CandidateService.ListByTrip: %w", err)
	}
	if candidates == nil {
		return []domain.Candidate{}, nil
	}
	return candidates, nil
}

// SetApproved marks a candidate as approved (or not) for scheduling.
// Returns domain.ErrNotFound if the candidate does not exist under the trip.
func (s *CandidateService) SetApproved(ctx context.Context, tripID, candidateID uuid.UUID, approved bool) (domain.Candidate, error) {
	result, err := s.candidates.SetApproved(ctx, tripID, candidateID, approved)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("service.CandidateService.SetApproved: %w", err)
	}
	return result, nil
}

// Delete removes a candidate by ID, scoped to the given trip.
func (s *CandidateService) Delete(ctx context.Context, tripID, candidateID uuid.UUID) error {
	if err := s.candidates.Delete(ctx, tripID, candidateID); err != nil {
		return fmt.Errorf("service.CandidateService.Delete: %w", err)
	}
	return nil
}
