package generation

import "strings"

const fence = "```"

// ExtractJSON isolates the JSON payload in raw model output. When the text
// contains a fenced block, optionally tagged "json", the trimmed content of
// the first such block is returned. Otherwise raw is returned unchanged.
func ExtractJSON(raw string) string {
	open := strings.Index(raw, fence)
	if open < 0 {
		return raw
	}
	rest := raw[open+len(fence):]
	rest = strings.TrimPrefix(rest, "json")

	end := strings.Index(rest, fence)
	if end < 0 {
		return raw
	}
	inner := strings.TrimSpace(rest[:end])
	if inner == "" {
		return raw
	}
	return inner
}
