package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/handler"
)

func TestShareItinerary_202(t *testing.T) {
	var gotEmail string
	svc := &mockShareServicer{
		share: func(_ context.Context, userID, _ uuid.UUID, email string) error {
			assert.Equal(t, testUser, userID)
			gotEmail = email
			return nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Share: svc}), http.MethodPost,
		"/itineraries/"+uuid.NewString()+"/share", map[string]any{"email": "friend@example.com"})

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "friend@example.com", gotEmail)
	assert.Contains(t, rec.Body.String(), `"status":"queued"`)
}

func TestShareItinerary_422_BadEmail(t *testing.T) {
	svc := &mockShareServicer{
		share: func(context.Context, uuid.UUID, uuid.UUID, string) error {
			return fmt.Errorf("%w: email must be a valid email address", domain.ErrValidation)
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Share: svc}), http.MethodPost,
		"/itineraries/"+uuid.NewString()+"/share", map[string]any{"email": "nope"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "email must be a valid email address", decodeError(t, rec).Error.Message)
}
