// Package handler implements the HTTP handlers for the Tripweaver API.
// All handlers are methods on Server; routes are registered by Routes.
// Methods are split into resource-specific files (trip.go, candidate.go,
// itinerary.go, item.go) but all share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lcollard/tripweaver/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CandidateServicer defines the business operations the candidate handlers
// depend on.
type CandidateServicer interface {
	CreateBatch(ctx context.Context, tripID uuid.UUID, candidates []domain.Candidate) ([]domain.Candidate, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID, approvedOnly bool) ([]domain.Candidate, error)
	SetApproved(ctx context.Context, tripID, candidateID uuid.UUID, approved bool) (domain.Candidate, error)
	Delete(ctx context.Context, tripID, candidateID uuid.UUID) error
}

// ItineraryServicer defines the scheduling operations the itinerary handlers
// depend on.
type ItineraryServicer interface {
	Preview(ctx context.Context, tripID uuid.UUID, pace *int) ([]domain.ScheduledItem, error)
	Import(ctx context.Context, tripID uuid.UUID, pace *int) (domain.ImportReport, error)
}

// ItemServicer defines the trip item operations the item handlers depend on.
type ItemServicer interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips      TripServicer
	candidates CandidateServicer
	itinerary  ItineraryServicer
	items      ItemServicer
	openapi    []byte
}

// NewServer constructs the Server with all its dependencies.
// openapi is the raw OpenAPI document served at /openapi.yaml; pass nil to
// disable that route.
func NewServer(trips TripServicer, candidates CandidateServicer, itinerary ItineraryServicer, items ItemServicer, openapi []byte) *Server {
	return &Server{
		trips:      trips,
		candidates: candidates,
		itinerary:  itinerary,
		items:      items,
		openapi:    openapi,
	}
}

// Routes returns the chi router with every API route registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	if s.openapi != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Route("/candidates", func(r chi.Router) {
				r.Post("/", s.CreateCandidates)
				r.Get("/", s.ListCandidates)
				r.Patch("/{candidateID}/approval", s.SetCandidateApproval)
				r.Delete("/{candidateID}", s.DeleteCandidate)
			})

			r.Route("/itinerary", func(r chi.Router) {
				r.Post("/preview", s.PreviewItinerary)
				r.Post("/import", s.ImportItinerary)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", s.ListItems)
				r.Delete("/{itemID}", s.DeleteItem)
			})
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPI handles GET /openapi.yaml, serving the embedded API document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.openapi)
}
