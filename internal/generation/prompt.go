package generation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Mode selects which result a generation call produces.
type Mode string

const (
	ModeItinerary   Mode = "itinerary"
	ModePackingList Mode = "packing_list"
)

const itinerarySchema = `{
  "title": "X-Day Adventure in [Destination]",
  "days": [
    {
      "day_number": 1,
      "date": "YYYY-MM-DD",
      "description": "Day 1 description",
      "activities": [
        {
          "type": "interest-type",
          "title": "Activity title",
          "description": "Activity description",
          "time": "HH:MM",
          "cost": 5000,
          "link": "https://example.com/..."
        }
      ]
    }
  ]
}`

const packingSchema = `{
  "categories": ["Category1", "Category2"],
  "items": [
    {
      "name": "Item name",
      "category": "Category name",
      "quantity": 1,
      "is_essential": true,
      "notes": "Optional note about the item"
    }
  ]
}`

// BuildPrompt renders the instruction sent to the model for the given mode.
// It is a pure function of its arguments.
func BuildPrompt(req domain.GenerationRequest, mode Mode) string {
	if mode == ModePackingList {
		return buildPackingPrompt(req)
	}
	return buildItineraryPrompt(req)
}

func buildItineraryPrompt(req domain.GenerationRequest) string {
	days := req.DayCount()
	budget := formatAmount(req.Budget)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s.\n\n", days, req.Destination)
	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Start date: %s\n", req.StartDate.Format(domain.DateLayout))
	fmt.Fprintf(&b, "- End date: %s\n", req.EndDate.Format(domain.DateLayout))
	fmt.Fprintf(&b, "- Duration: %d days\n", days)
	fmt.Fprintf(&b, "- Budget: %s\n", budget)
	writeClauses(&b, preferenceClauses(req, true))

	b.WriteString("\nFor each day, provide a day number, the date (YYYY-MM-DD), a brief description,\n")
	b.WriteString("and 3-4 activities aligned with the interests and preferences. Each activity needs\n")
	b.WriteString("a type (matching one of the interests when possible), a title, a description, a\n")
	b.WriteString("recommended time (HH:MM), an estimated cost as a plain number, and a placeholder\n")
	b.WriteString("link (use https://example.com/...).\n\n")
	b.WriteString("Respond with a JSON object with exactly this structure:\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\nRules:\n")
	fmt.Fprintf(&b, "- Include exactly %d entries in \"days\", numbered 1 to %d.\n", days, days)
	fmt.Fprintf(&b, "- All costs together must stay within the total budget of %s.\n", budget)
	b.WriteString("- Respect the dietary preferences for food recommendations and the accessibility needs for every activity.\n")
	writeFormatRules(&b)
	return b.String()
}

func buildPackingPrompt(req domain.GenerationRequest) string {
	days := req.DayCount()

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed packing list for a %d-day trip to %s.\n\n", days, req.Destination)
	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Start date: %s\n", req.StartDate.Format(domain.DateLayout))
	fmt.Fprintf(&b, "- End date: %s\n", req.EndDate.Format(domain.DateLayout))
	fmt.Fprintf(&b, "- Duration: %d days\n", days)
	writeClauses(&b, preferenceClauses(req, false))

	b.WriteString("\nOrganise the list by categories such as Clothing, Toiletries, Electronics and Documents.\n")
	b.WriteString("For each item give its name, its category, a recommended quantity (a positive whole number),\n")
	b.WriteString("whether it is essential (true or false), and optional notes.\n\n")
	b.WriteString("Respond with a JSON object with exactly this structure:\n")
	b.WriteString(packingSchema)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Every item's category must appear in \"categories\".\n")
	b.WriteString("- Tailor the list to the destination's typical weather during the travel dates and to the interests.\n")
	writeFormatRules(&b)
	return b.String()
}

// preferenceClauses renders every preference as a line, substituting a
// neutral phrase when the traveller expressed none.
func preferenceClauses(req domain.GenerationRequest, withDiet bool) []string {
	interests := lo.Compact(lo.Map(req.Interests, func(s string, _ int) string { return strings.TrimSpace(s) }))

	clauses := []string{
		listClause("Interests", interests, "No specific interests"),
		choiceClause("Preferred accommodation", req.Accommodation, "No specific accommodation preference"),
		choiceClause("Preferred transportation", req.Transportation, "No specific transportation preference"),
	}
	if withDiet {
		clauses = append(clauses,
			listClause("Dietary preferences", req.Dietary, "No specific dietary preferences"),
			listClause("Accessibility needs", req.Accessibility, "No specific accessibility requirements"),
		)
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		clauses = append(clauses, "Additional notes: "+notes)
	} else {
		clauses = append(clauses, "No additional notes")
	}
	return clauses
}

func choiceClause(label string, p domain.Preference, none string) string {
	if v, ok := p.Value(); ok {
		return label + ": " + v
	}
	return none
}

func listClause[S ~[]string](label string, values S, none string) string {
	if len(values) == 0 {
		return none
	}
	return label + ": " + strings.Join([]string(values), ", ")
}

func writeClauses(b *strings.Builder, clauses []string) {
	for _, c := range clauses {
		fmt.Fprintf(b, "- %s\n", c)
	}
}

func writeFormatRules(b *strings.Builder) {
	b.WriteString("- The response must be strictly valid JSON: double-quote every property name and string value,\n")
	b.WriteString("  no single quotes, no unquoted keys, no trailing commas, no comments.\n")
	b.WriteString("- Return ONLY the JSON object, without markdown code fences or any commentary.\n")
}

// formatAmount renders a budget with thousands separators, e.g. "30,000".
func formatAmount(v float64) string {
	return message.NewPrinter(language.English).Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
