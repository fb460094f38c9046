package handler

import (
	"net/http"
	"time"

	"github.com/lcollard/tripweaver/internal/domain"
)

// CandidateInput is one generated experience in a batch submission.
type CandidateInput struct {
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Duration     *string `json:"duration,omitempty"`
	Description  *string `json:"description,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
}

// CandidateBatchRequest is the JSON body for POST /trips/{tripID}/candidates.
type CandidateBatchRequest struct {
	Candidates []CandidateInput `json:"candidates"`
}

// CandidateResponse is the JSON shape of a candidate in API responses.
type CandidateResponse struct {
	ID           string    `json:"id"`
	TripID       string    `json:"trip_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Duration     *string   `json:"duration,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	Approved     bool      `json:"approved"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// ApprovalRequest is the JSON body for PATCH .../candidates/{candidateID}/approval.
type ApprovalRequest struct {
	Approved bool `json:"approved"`
}

// CreateCandidates handles POST /trips/{tripID}/candidates.
// The body carries a whole generated batch; insertion is all-or-nothing.
func (s *Server) CreateCandidates(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req CandidateBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	batch := make([]domain.Candidate, len(req.Candidates))
	for i, in := range req.Candidates {
		batch[i] = inputToCandidate(in)
	}

	created, err := s.candidates.CreateBatch(r.Context(), tripID, batch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, candidatesToResponse(created))
}

// ListCandidates handles GET /trips/{tripID}/candidates.
// Pass ?approved=true to list only the approved subset the scheduler uses.
func (s *Server) ListCandidates(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	approvedOnly := r.URL.Query().Get("approved") == "true"
	candidates, err := s.candidates.ListByTrip(r.Context(), tripID, approvedOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidatesToResponse(candidates))
}

// SetCandidateApproval handles PATCH /trips/{tripID}/candidates/{candidateID}/approval.
func (s *Server) SetCandidateApproval(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	candidateID, err := pathUUID(r, "candidateID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var req ApprovalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.candidates.SetApproved(r.Context(), tripID, candidateID, req.Approved)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidateToResponse(updated))
}

// DeleteCandidate handles DELETE /trips/{tripID}/candidates/{candidateID}.
func (s *Server) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	candidateID, err := pathUUID(r, "candidateID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	if err := s.candidates.Delete(r.Context(), tripID, candidateID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func inputToCandidate(in CandidateInput) domain.Candidate {
	c := domain.Candidate{
		Title:    in.Title,
		Category: in.Category,
	}
	if in.Duration != nil {
		c.Duration = *in.Duration
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Neighborhood != nil {
		c.Neighborhood = *in.Neighborhood
	}
	return c
}

func candidateToResponse(c domain.Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:        c.ID.String(),
		TripID:    c.TripID.String(),
		Title:     c.Title,
		Category:  c.Category,
		Approved:  c.Approved,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
	}
	if c.Duration != "" {
		resp.Duration = &c.Duration
	}
	if c.Description != "" {
		resp.Description = &c.Description
	}
	if c.Neighborhood != "" {
		resp.Neighborhood = &c.Neighborhood
	}
	return resp
}

func candidatesToResponse(candidates []domain.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = candidateToResponse(c)
	}
	return out
}
