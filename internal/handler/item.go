package handler

import (
	"net/http"
	"time"

	"github.com/lcollard/tripweaver/internal/domain"
)

// ItemResponse is the JSON shape of a persisted trip item.
type ItemResponse struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Notes     *string   `json:"notes,omitempty"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListItems handles GET /trips/{tripID}/items.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	items, err := s.items.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = itemToResponse(item)
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteItem handles DELETE /trips/{tripID}/items/{itemID}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := s.items.Delete(r.Context(), tripID, itemID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func itemToResponse(item domain.TripItem) ItemResponse {
	resp := ItemResponse{
		ID:        item.ID.String(),
		TripID:    item.TripID.String(),
		Type:      string(item.Type),
		Title:     item.Title,
		StartAt:   item.StartAt,
		EndAt:     item.EndAt,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Notes != "" {
		resp.Notes = &item.Notes
	}
	return resp
}
