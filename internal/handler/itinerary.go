package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// GenerateItinerary handles POST /itineraries.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var body generateRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	it, err := s.itineraries.Generate(r.Context(), userID, body.toDomain())
	if err != nil {
		writeGenerationError(w, r, err, "itinerary")
		return
	}
	writeJSON(w, http.StatusCreated, itineraryToResponse(it))
}

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	list, total, err := s.itineraries.List(r.Context(), userID, params)
	if err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}

	data := make([]itineraryResponse, len(list))
	for i, it := range list {
		data[i] = itineraryToResponse(it)
	}
	writeJSON(w, http.StatusOK, itineraryListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetItinerary handles GET /itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	it, err := s.itineraries.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}
	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// UpdateItinerary handles PATCH /itineraries/{id}.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body updateItineraryRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	it, err := s.itineraries.Update(r.Context(), userID, id, body.toDomain())
	if err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}
	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// DeleteItinerary handles DELETE /itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.itineraries.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
