package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Outcome records which stage of the pipeline produced a result.
type Outcome string

const (
	// OutcomeStrict means the model output parsed as-is.
	OutcomeStrict Outcome = "strict"
	// OutcomeRepaired means the output parsed only after Repair.
	OutcomeRepaired Outcome = "repaired"
	// OutcomeFallback means the result was synthesized from the request.
	OutcomeFallback Outcome = "fallback"
	// OutcomeError means the model call itself failed.
	OutcomeError Outcome = "error"
)

// Parse decodes candidate into a T, first strictly and then, if that fails,
// after applying Repair. The error is returned only when both attempts fail.
func Parse[T any](candidate string) (T, Outcome, error) {
	var strict T
	if err := json.Unmarshal([]byte(candidate), &strict); err == nil {
		return strict, OutcomeStrict, nil
	}

	var repaired T
	if err := json.Unmarshal([]byte(Repair(candidate)), &repaired); err != nil {
		var zero T
		return zero, OutcomeFallback, fmt.Errorf("generation.Parse: %w", err)
	}
	return repaired, OutcomeRepaired, nil
}

// The wire types mirror the JSON schema requested in the prompt. Numeric
// fields accept numbers or numeric strings since models emit both.

type itineraryWire struct {
	Title string    `json:"title"`
	Days  []dayWire `json:"days"`
}

type dayWire struct {
	DayNumber   flexNumber     `json:"day_number"`
	Date        string         `json:"date"`
	Description string         `json:"description"`
	Activities  []activityWire `json:"activities"`
}

type activityWire struct {
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Time        string     `json:"time"`
	Cost        flexNumber `json:"cost"`
	Link        string     `json:"link"`
	Notes       *string    `json:"notes"`
}

type packingWire struct {
	Categories []string          `json:"categories"`
	Items      []packingItemWire `json:"items"`
}

type packingItemWire struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    flexNumber `json:"quantity"`
	IsEssential flexBool   `json:"is_essential"`
	Notes       *string    `json:"notes"`
}

// flexNumber decodes a JSON number, a numeric string such as "1,200" or
// "₹500", or null. Strings with no digits decode as zero.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = flexNumber(numberFromText(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = flexNumber(f)
	return nil
}

// numberFromText keeps the first run of digits, with an optional decimal
// point, and ignores currency symbols and thousands separators.
func numberFromText(s string) float64 {
	var digits strings.Builder
	started := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
			started = true
		case r == '.' && started:
			digits.WriteRune(r)
		case r == ',' && started:
		case started:
			f, _ := strconv.ParseFloat(strings.TrimSuffix(digits.String(), "."), 64)
			return f
		}
	}
	f, _ := strconv.ParseFloat(strings.TrimSuffix(digits.String(), "."), 64)
	return f
}

// flexBool decodes a JSON boolean, "true"/"false" strings, or null.
type flexBool bool

func (v *flexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch strings.ToLower(strings.Trim(string(b), `"`)) {
	case "true", "yes", "1":
		*v = true
		return nil
	case "false", "no", "0", "null", "":
		*v = false
		return nil
	}
	return fmt.Errorf("generation: invalid boolean %s", b)
}
