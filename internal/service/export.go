package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Export formats.
const (
	FormatICS = "ics"
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ItineraryLoader loads a complete itinerary owned by a user.
// *ItineraryService satisfies it.
type ItineraryLoader interface {
	Get(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error)
}

// Document is a rendered export ready to be written to a response.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

// ExportService renders an itinerary as a calendar, spreadsheet or printable
// document.
type ExportService struct {
	itineraries ItineraryLoader
}

// NewExportService constructs an ExportService.
func NewExportService(itineraries ItineraryLoader) *ExportService {
	return &ExportService{itineraries: itineraries}
}

// csvHeaders is the first row of every CSV export.
var csvHeaders = []string{
	"day_number", "date", "day_description",
	"time", "type", "title", "description", "cost", "link", "notes",
}

// Export renders the user's itinerary in format. An empty format means ics.
func (s *ExportService) Export(ctx context.Context, userID, id uuid.UUID, format string) (Document, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatICS
	}
	if format != FormatICS && format != FormatCSV && format != FormatPDF {
		return Document{}, fmt.Errorf("%w: format must be one of ics, csv, pdf", domain.ErrValidation)
	}

	it, err := s.itineraries.Get(ctx, userID, id)
	if err != nil {
		return Document{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	name := slug(it.Title)
	switch format {
	case FormatCSV:
		body, err := ExportCSV(it)
		if err != nil {
			return Document{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		return Document{ContentType: "text/csv; charset=utf-8", Filename: name + ".csv", Body: body}, nil
	case FormatPDF:
		body, err := ExportPDF(it)
		if err != nil {
			return Document{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		return Document{ContentType: "application/pdf", Filename: name + ".pdf", Body: body}, nil
	default:
		return Document{ContentType: "text/calendar; charset=utf-8", Filename: name + ".ics", Body: []byte(ExportICS(it))}, nil
	}
}

// ExportICS renders one all-day event per day and one timed event per
// activity whose time is HH:MM. Activity times are treated as UTC.
func ExportICS(it domain.Itinerary) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Trip Planner//Itinerary Export//EN")

	stamp := it.UpdatedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}

	for _, d := range it.Days {
		ev := cal.AddEvent(fmt.Sprintf("%s-day-%d@trip-planner", it.ID, d.DayNumber))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(fmt.Sprintf("%s: Day %d", it.Title, d.DayNumber))
		if d.Description != "" {
			ev.SetDescription(d.Description)
		}
		ev.SetAllDayStartAt(d.Date)
		ev.SetAllDayEndAt(d.Date.AddDate(0, 0, 1))

		for i, a := range d.Activities {
			clock, err := time.Parse("15:04", a.Time)
			if err != nil {
				continue
			}
			start := time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
			ae := cal.AddEvent(fmt.Sprintf("%s-day-%d-activity-%d@trip-planner", it.ID, d.DayNumber, i+1))
			ae.SetDtStampTime(stamp)
			ae.SetSummary(a.Title)
			if a.Description != "" {
				ae.SetDescription(a.Description)
			}
			ae.SetStartAt(start)
			ae.SetEndAt(start.Add(time.Hour))
			if a.Link != "" {
				ae.SetURL(a.Link)
			}
		}
	}
	return cal.Serialize()
}

// ExportCSV writes one row per activity; days without activities get one row.
func ExportCSV(it domain.Itinerary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, r := range it.ExportRows() {
		cost := ""
		if r.Title != "" {
			cost = strconv.FormatFloat(r.Cost, 'f', -1, 64)
		}
		rec := []string{
			strconv.Itoa(r.DayNumber),
			r.Date.Format(domain.DateLayout),
			r.DayDescription,
			r.Time, r.Type, r.Title, r.Description, cost, r.Link, r.Notes,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF renders a printable A4 document with a section per day.
func ExportPDF(it domain.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle(tr(it.Title), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(0, 9, tr(it.Title), "", "L", false)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("%s, %s to %s", it.Destination,
		it.StartDate.Format(domain.DateLayout), it.EndDate.Format(domain.DateLayout))))
	pdf.Ln(6)
	pdf.Cell(0, 7, "Budget: "+strconv.FormatFloat(it.Budget, 'f', -1, 64))
	pdf.Ln(10)

	for _, d := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", d.DayNumber, d.Date.Format("Mon, 2 Jan 2006")))
		pdf.Ln(8)
		if d.Description != "" {
			pdf.SetFont("Arial", "I", 11)
			pdf.MultiCell(0, 6, tr(d.Description), "", "L", false)
		}
		pdf.SetFont("Arial", "", 11)
		for _, a := range d.Activities {
			line := a.Title
			if a.Time != "" {
				line = a.Time + "  " + line
			}
			if a.Cost > 0 {
				line += " (" + strconv.FormatFloat(a.Cost, 'f', -1, 64) + ")"
			}
			pdf.MultiCell(0, 6, tr("- "+line), "", "L", false)
			if a.Description != "" {
				pdf.SetX(26)
				pdf.MultiCell(0, 5, tr(a.Description), "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// slug turns a title into a filename stem.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "itinerary"
	}
	return out
}
