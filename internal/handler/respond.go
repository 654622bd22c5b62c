package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/middleware"
)

const busyMessage = "AI service is currently busy. Please try again in a few minutes."

// errorDetail and errorResponse are the API's standard error envelope.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// decodeJSON reads the request body into v. On failure it writes the error
// response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "bad_request", "malformed request body")
	return false
}

// writeServiceError maps a service error to an HTTP response. what names the
// resource being handled ("itinerary", "packing list") for the message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", what+" not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", what+" already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "rate_limited", busyMessage)
	case errors.Is(err, domain.ErrUpstream):
		logFailure(r, err)
		writeError(w, http.StatusBadGateway, "upstream_error", "Failed to generate "+what+". Please try again later.")
	default:
		logFailure(r, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// writeGenerationError is writeServiceError for the generation routes, whose
// unexpected failures carry a retry hint instead of a bare 500 message.
func writeGenerationError(w http.ResponseWriter, r *http.Request, err error, what string) {
	for _, known := range []error{
		domain.ErrValidation, domain.ErrNotFound, domain.ErrConflict,
		domain.ErrUnauthorized, domain.ErrRateLimited, domain.ErrUpstream,
	} {
		if errors.Is(err, known) {
			writeServiceError(w, r, err, what)
			return
		}
	}
	logFailure(r, err)
	writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate "+what+". Please try again later.")
}

func logFailure(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.DayService.AddActivity: validation error: title is required" → "title is required"
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// pathUUID parses a UUID path parameter, writing 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func pathIndex(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// queryInt returns nil when the parameter is absent or not a number, so the
// domain defaults apply.
func queryInt(r *http.Request, name string) *int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// currentUser returns the authenticated user id. Routes are mounted behind the
// authenticator, so a missing id means the router was wired without it.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
	}
	return id, ok
}
