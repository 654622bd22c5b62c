package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

func exportItinerary(userID uuid.UUID) domain.Itinerary {
	it := goaItinerary(userID)
	it.Days = []domain.Day{
		{DayNumber: 1, Date: date("2025-06-01"), Description: "Arrive", Activities: []domain.Activity{
			{Type: "food", Title: "Fish thali", Time: "13:00", Cost: 600, Link: "https://example.com/thali"},
			{Type: "sightseeing", Title: "Sunset walk", Time: "evening"},
		}},
		{DayNumber: 2, Date: date("2025-06-02"), Description: "Rest"},
	}
	return it
}

func newExportService(it domain.Itinerary) *service.ExportService {
	return service.NewExportService(&mockLoader{get: func(_ context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
		if userID != it.UserID || id != it.ID {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return it, nil
	}})
}

func TestExportService_DefaultIsICS(t *testing.T) {
	it := exportItinerary(uuid.New())

	doc, err := newExportService(it).Export(context.Background(), it.UserID, it.ID, "")

	require.NoError(t, err)
	assert.Equal(t, "text/calendar; charset=utf-8", doc.ContentType)
	assert.Equal(t, "tastes-of-goa.ics", doc.Filename)
	body := string(doc.Body)
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "DTSTART;VALUE=DATE:20250601")
	assert.Contains(t, body, "DTSTART:20250601T130000Z")
	assert.Equal(t, 3, strings.Count(body, "BEGIN:VEVENT"), "two days plus one timed activity")
}

func TestExportService_CSV(t *testing.T) {
	it := exportItinerary(uuid.New())

	doc, err := newExportService(it).Export(context.Background(), it.UserID, it.ID, "CSV")

	require.NoError(t, err)
	assert.Equal(t, "tastes-of-goa.csv", doc.Filename)
	records, err := csv.NewReader(bytes.NewReader(doc.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header + two activities + one empty day")
	assert.Equal(t, "day_number", records[0][0])
	assert.Equal(t, []string{"1", "2025-06-01", "Arrive", "13:00", "food", "Fish thali", "", "600", "https://example.com/thali", ""}, records[1])
	assert.Equal(t, "2", records[3][0])
	assert.Equal(t, "", records[3][7], "empty day has no cost")
}

func TestExportService_PDF(t *testing.T) {
	it := exportItinerary(uuid.New())
	it.Title = "Goa – Café crawl"

	doc, err := newExportService(it).Export(context.Background(), it.UserID, it.ID, "pdf")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "goa-caf-crawl.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF-")))
}

func TestExportService_UnknownFormat(t *testing.T) {
	it := exportItinerary(uuid.New())

	_, err := newExportService(it).Export(context.Background(), it.UserID, it.ID, "xlsx")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_NotOwner(t *testing.T) {
	it := exportItinerary(uuid.New())

	_, err := newExportService(it).Export(context.Background(), uuid.New(), it.ID, "csv")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
