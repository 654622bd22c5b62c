package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ExportItinerary handles GET /itineraries/{id}/export.
// Use ?format=ics|csv|pdf; default is ics.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	doc, err := s.export.Export(r.Context(), userID, id, r.URL.Query().Get("format"))
	if err != nil {
		writeServiceError(w, r, err, "itinerary")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Body); err != nil {
		slog.WarnContext(r.Context(), "write export", "error", err)
	}
}
