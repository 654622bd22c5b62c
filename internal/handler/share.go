package handler

import "net/http"

// ShareItinerary handles POST /itineraries/{id}/share.
// The email is queued, so the response is 202.
func (s *Server) ShareItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body shareRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := s.share.Share(r.Context(), userID, id, body.Email); err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
