package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// dayPath resolves the user and the {id} and {dayID} path parameters.
func dayPath(w http.ResponseWriter, r *http.Request) (userID, itineraryID, dayID uuid.UUID, ok bool) {
	if userID, ok = currentUser(w, r); !ok {
		return
	}
	if itineraryID, ok = pathUUID(w, r, "id"); !ok {
		return
	}
	dayID, ok = pathUUID(w, r, "dayID")
	return
}

// ListDays handles GET /itineraries/{id}/days.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	days, err := s.days.ListDays(r.Context(), userID, itineraryID)
	if err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}
	out := make([]dayResponse, len(days))
	for i, d := range days {
		out[i] = dayToResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateDay handles POST /itineraries/{id}/days.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body dayRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.days.CreateDay(r.Context(), userID, itineraryID, body.toDay())
	if err != nil {
		writeServiceError(w, r, err, "day")
		return
	}
	writeJSON(w, http.StatusCreated, dayToResponse(d))
}

// GetDay handles GET /itineraries/{id}/days/{dayID}.
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}

	d, err := s.days.GetDay(r.Context(), userID, itineraryID, dayID)
	if err != nil {
		writeServiceError(w, r, err, "day")
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(d))
}

// UpdateDay handles PATCH /itineraries/{id}/days/{dayID}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}
	var body dayRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.days.UpdateDay(r.Context(), userID, itineraryID, dayID, body.toPatch())
	if err != nil {
		writeServiceError(w, r, err, "day")
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(d))
}

// DeleteDay handles DELETE /itineraries/{id}/days/{dayID}.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}

	if err := s.days.DeleteDay(r.Context(), userID, itineraryID, dayID); err != nil {
		writeServiceError(w, r, err, "day")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddActivity handles POST /itineraries/{id}/days/{dayID}/activities.
// It responds with the whole day so the client sees the new order.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}
	var body domain.Activity
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.days.AddActivity(r.Context(), userID, itineraryID, dayID, body)
	if err != nil {
		writeServiceError(w, r, err, "day")
		return
	}
	writeJSON(w, http.StatusCreated, dayToResponse(d))
}

// ReorderActivities handles PUT /itineraries/{id}/days/{dayID}/activities.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}
	var body reorderRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.days.ReorderActivities(r.Context(), userID, itineraryID, dayID, body.Activities)
	if err != nil {
		writeServiceError(w, r, err, "day")
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(d))
}

// UpdateActivity handles PUT /itineraries/{id}/days/{dayID}/activities/{index}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}
	index, ok := pathIndex(w, r, "index")
	if !ok {
		return
	}
	var body domain.Activity
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.days.UpdateActivity(r.Context(), userID, itineraryID, dayID, index, body)
	if err != nil {
		writeServiceError(w, r, err, "activity")
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(d))
}

// DeleteActivity handles DELETE /itineraries/{id}/days/{dayID}/activities/{index}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, itineraryID, dayID, ok := dayPath(w, r)
	if !ok {
		return
	}
	index, ok := pathIndex(w, r, "index")
	if !ok {
		return
	}

	d, err := s.days.DeleteActivity(r.Context(), userID, itineraryID, dayID, index)
	if err != nil {
		writeServiceError(w, r, err, "activity")
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(d))
}
