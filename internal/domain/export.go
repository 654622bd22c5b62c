package domain

import "time"

// ExportRow is a single row in the flat activity export of an itinerary.
// It is a denormalized view: one row per activity, with day fields repeated
// for every activity on that day. Days with no activities yield one row with
// zero values for all activity fields.
type ExportRow struct {
	// Day fields, repeated for every activity on the day.
	DayNumber      int
	Date           time.Time
	DayDescription string

	// Activity fields, zero values when the day has no activities.
	Time        string
	Type        string
	Title       string
	Description string
	Cost        float64
	Link        string
	Notes       string
}

// ExportRows flattens the itinerary's days into export rows, in day order
// and then activity order.
func (it Itinerary) ExportRows() []ExportRow {
	var rows []ExportRow
	for _, d := range it.Days {
		base := ExportRow{DayNumber: d.DayNumber, Date: d.Date, DayDescription: d.Description}
		if len(d.Activities) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, a := range d.Activities {
			row := base
			row.Time = a.Time
			row.Type = a.Type
			row.Title = a.Title
			row.Description = a.Description
			row.Cost = a.Cost
			row.Link = a.Link
			row.Notes = a.Notes
			rows = append(rows, row)
		}
	}
	return rows
}
