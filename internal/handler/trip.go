package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/lcollard/tripweaver/internal/domain"
)

// TripRequest is the JSON body for creating or updating a trip.
// Dates are date-only strings ("2006-01-02"); openapi_types.Date enforces
// the format during decoding.
type TripRequest struct {
	Name        string              `json:"name"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date  `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Pace        *int                `json:"pace,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

// TripResponse is the JSON shape of a trip in API responses.
type TripResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date  `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Pace        int                 `json:"pace"`
	Notes       *string             `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Pagination carries paging metadata on list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripListResponse is the JSON shape of GET /trips.
type TripListResponse struct {
	Data       []TripResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	trip := requestToTrip(req)
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a TripRequest body into a domain.Trip.
// Pace defaults to 50 (a balanced itinerary) when omitted.
func requestToTrip(req TripRequest) domain.Trip {
	t := domain.Trip{
		Name:      req.Name,
		StartDate: req.StartDate.Time,
		Pace:      50,
	}
	if req.Destination != nil {
		t.Destination = *req.Destination
	}
	if req.EndDate != nil {
		ed := req.EndDate.Time
		t.EndDate = &ed
	}
	if req.Pace != nil {
		t.Pace = *req.Pace
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	return t
}

// tripToResponse converts a domain.Trip into its API response shape.
func tripToResponse(t domain.Trip) TripResponse {
	resp := TripResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		StartDate: openapi_types.Date{Time: t.StartDate},
		Pace:      t.Pace,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Destination != "" {
		resp.Destination = &t.Destination
	}
	if t.EndDate != nil {
		ed := openapi_types.Date{Time: *t.EndDate}
		resp.EndDate = &ed
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	return resp
}
