package domain

import (
	"encoding/json"
	"strings"
)

// Preference is a single-choice trip preference such as the accommodation or
// transportation type. The zero value means "no preference"; the legacy
// sentinel "any" and the empty string both decode to it.
type Preference struct {
	value string
}

// NewPreference builds a Preference from user input.
func NewPreference(s string) Preference {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "any") {
		return Preference{}
	}
	return Preference{value: s}
}

// Value returns the chosen option and whether one was chosen at all.
func (p Preference) Value() (string, bool) {
	return p.value, p.value != ""
}

// IsSet reports whether the traveller expressed a preference.
func (p Preference) IsSet() bool { return p.value != "" }

// String returns the option, or "" when unset.
func (p Preference) String() string { return p.value }

// MarshalJSON encodes an unset preference as null.
func (p Preference) MarshalJSON() ([]byte, error) {
	if !p.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON accepts null, "", "any" or a concrete option.
func (p *Preference) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*p = Preference{}
		return nil
	}
	*p = NewPreference(*s)
	return nil
}

// PreferenceSet is a multi-choice preference such as dietary requirements.
// An empty set means "no preference"; the sentinel "none" is never stored.
type PreferenceSet []string

// NewPreferenceSet trims the values, drops blanks and removes duplicates while
// keeping first-seen order. A "none" anywhere in values empties the set.
func NewPreferenceSet(values ...string) PreferenceSet {
	out := PreferenceSet{}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if strings.EqualFold(v, "none") {
			return PreferenceSet{}
		}
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IsEmpty reports whether the set expresses no preference.
func (s PreferenceSet) IsEmpty() bool { return len(s) == 0 }

// MarshalJSON always encodes an array, never null.
func (s PreferenceSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON normalises the decoded values with NewPreferenceSet.
func (s *PreferenceSet) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = NewPreferenceSet(raw...)
	return nil
}
