package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// GetProfile handles GET /me/profile.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	p, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(p))
}

// UpdateProfile handles PATCH /me/profile.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var body profileRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	p, err := s.profiles.Update(r.Context(), userID, domain.ProfilePatch{
		FullName:  body.FullName,
		AvatarURL: body.AvatarURL,
		HomeCity:  body.HomeCity,
	})
	if err != nil {
		writeServiceError(w, r, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(p))
}
