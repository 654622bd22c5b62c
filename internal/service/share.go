package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/mailer"
)

// ShareService emails a plain-text summary of an itinerary.
type ShareService struct {
	itineraries ItineraryLoader
	mailer      mailer.Mailer
	now         func() time.Time
}

// NewShareService constructs a ShareService.
func NewShareService(itineraries ItineraryLoader, m mailer.Mailer) *ShareService {
	return &ShareService{itineraries: itineraries, mailer: m, now: time.Now}
}

// Share sends the user's itinerary to email.
func (s *ShareService) Share(ctx context.Context, userID, id uuid.UUID, email string) error {
	email = strings.TrimSpace(email)
	if err := validateVar("email", email, "required,email"); err != nil {
		return err
	}

	it, err := s.itineraries.Get(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("service.ShareService.Share: %w", err)
	}

	msg := mailer.Message{
		ItineraryID: it.ID,
		SenderID:    userID,
		To:          email,
		Subject:     "Trip itinerary: " + it.Title,
		Body:        ShareBody(it),
		QueuedAt:    s.now().UTC(),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("service.ShareService.Share: %w", err)
	}
	return nil
}

// ShareBody renders the plain-text email body.
func ShareBody(it domain.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s, %s to %s\n\n", it.Title, it.Destination,
		it.StartDate.Format(domain.DateLayout), it.EndDate.Format(domain.DateLayout))
	for _, d := range it.Days {
		fmt.Fprintf(&b, "Day %d (%s)\n", d.DayNumber, d.Date.Format(domain.DateLayout))
		if d.Description != "" {
			fmt.Fprintf(&b, "  %s\n", d.Description)
		}
		for _, a := range d.Activities {
			if a.Time != "" {
				fmt.Fprintf(&b, "  - %s %s\n", a.Time, a.Title)
			} else {
				fmt.Fprintf(&b, "  - %s\n", a.Title)
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
