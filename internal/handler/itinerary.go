package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/lcollard/tripweaver/internal/domain"
)

// ItineraryRequest is the JSON body for the preview and import endpoints.
// Pace, when present, overrides the trip's stored pace for this run only.
// An empty body is accepted and means "use the stored pace".
type ItineraryRequest struct {
	Pace *int `json:"pace,omitempty"`
}

// ScheduledItemResponse is the JSON shape of one draft schedule entry.
type ScheduledItemResponse struct {
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Duration     *string   `json:"duration,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	AssignedAt   time.Time `json:"assigned_at"`
	TimeHint     string    `json:"time_hint"`
}

// PreviewResponse is the JSON shape of POST .../itinerary/preview.
type PreviewResponse struct {
	Items []ScheduledItemResponse `json:"items"`
}

// ImportReportResponse is the JSON shape of POST .../itinerary/import.
// Failures are reported per item; the endpoint itself stays 200 as long as
// the batch ran, so callers always get the full outcome picture.
type ImportReportResponse struct {
	Imported []ItemResponse         `json:"imported"`
	Failed   []domain.ImportFailure `json:"failed"`
}

// PreviewItinerary handles POST /trips/{tripID}/itinerary/preview.
// It returns the draft schedule without persisting anything.
func (s *Server) PreviewItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	req, ok := decodeItineraryRequest(w, r)
	if !ok {
		return
	}

	scheduled, err := s.itinerary.Preview(r.Context(), tripID, req.Pace)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]ScheduledItemResponse, len(scheduled))
	for i, sc := range scheduled {
		items[i] = scheduledItemToResponse(sc)
	}
	writeJSON(w, http.StatusOK, PreviewResponse{Items: items})
}

// ImportItinerary handles POST /trips/{tripID}/itinerary/import.
// It builds the schedule and persists each entry as a trip item, reporting
// per-item outcomes.
func (s *Server) ImportItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	req, ok := decodeItineraryRequest(w, r)
	if !ok {
		return
	}

	report, err := s.itinerary.Import(r.Context(), tripID, req.Pace)
	if err != nil {
		writeError(w, err)
		return
	}

	imported := make([]ItemResponse, len(report.Imported))
	for i, item := range report.Imported {
		imported[i] = itemToResponse(item)
	}
	writeJSON(w, http.StatusOK, ImportReportResponse{Imported: imported, Failed: report.Failed})
}

// decodeItineraryRequest decodes the optional request body, tolerating an
// entirely absent body. Returns ok=false after writing an error response.
func decodeItineraryRequest(w http.ResponseWriter, r *http.Request) (ItineraryRequest, bool) {
	var req ItineraryRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeRequestError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return ItineraryRequest{}, false
	}
	return req, true
}

func scheduledItemToResponse(sc domain.ScheduledItem) ScheduledItemResponse {
	resp := ScheduledItemResponse{
		Title:      sc.Title,
		Category:   sc.Category,
		AssignedAt: sc.AssignedAt,
		TimeHint:   sc.TimeHint,
	}
	if sc.Duration != "" {
		resp.Duration = &sc.Duration
	}
	if sc.Description != "" {
		resp.Description = &sc.Description
	}
	if sc.Neighborhood != "" {
		resp.Neighborhood = &sc.Neighborhood
	}
	return resp
}
