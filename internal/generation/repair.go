package generation

import "strings"

// repairPasses are applied in order, each to the output of the previous one.
// Every pass scans the text once and leaves the contents of string literals
// untouched, so text that is already valid JSON comes out byte-for-byte
// identical.
var repairPasses = []func(string) string{
	quoteBareKeys,
	normalizeQuotes,
	dropTrailingCommas,
	stripLineComments,
	stripBlockComments,
}

// Repair rewrites the syntax deviations models commonly produce (bare keys,
// single-quoted strings, trailing commas and comments) into strict JSON.
// It does not attempt to fix anything else.
func Repair(s string) string {
	for _, pass := range repairPasses {
		s = pass(s)
	}
	return s
}

// quoteBareKeys wraps identifiers that follow '{' or ',' and precede ':' in
// double quotes.
func quoteBareKeys(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); {
		if end, ok := skipOpaque(s, i); ok {
			b.WriteString(s[i:end])
			i = end
			continue
		}
		c := s[i]
		b.WriteByte(c)
		i++
		if c != '{' && c != ',' {
			continue
		}
		start := skipSpaceAndComments(s, i)
		end := start
		for end < len(s) && isWordByte(s[end]) {
			end++
		}
		if end == start {
			continue
		}
		if colon := skipSpace(s, end); colon >= len(s) || s[colon] != ':' {
			continue
		}
		b.WriteString(s[i:start])
		b.WriteByte('"')
		b.WriteString(s[start:end])
		b.WriteByte('"')
		i = end
	}
	return b.String()
}

// normalizeQuotes rewrites single-quoted strings as double-quoted ones,
// escaping any double quotes they contain. Unterminated strings are left as
// they are.
func normalizeQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case s[i] == '"' || isCommentStart(s, i):
			end, _ := skipOpaque(s, i)
			b.WriteString(s[i:end])
			i = end
		case s[i] == '\'':
			end, closed := scanString(s, i)
			if !closed {
				b.WriteString(s[i:])
				return b.String()
			}
			b.WriteByte('"')
			writeRequoted(&b, s[i+1:end-1])
			b.WriteByte('"')
			i = end
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// writeRequoted copies the body of a single-quoted string into a
// double-quoted context.
func writeRequoted(b *strings.Builder, body string) {
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			if body[i+1] != '\'' {
				b.WriteByte(c)
			}
			b.WriteByte(body[i+1])
			i++
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
}

// dropTrailingCommas removes commas whose next significant character closes
// an object or array.
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if end, ok := skipOpaque(s, i); ok {
			b.WriteString(s[i:end])
			i = end
			continue
		}
		if s[i] == ',' {
			if next := skipSpaceAndComments(s, i+1); next < len(s) && (s[next] == '}' || s[next] == ']') {
				i++
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// stripLineComments removes "//" comments up to, but not including, the end
// of the line.
func stripLineComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "//") {
			end := strings.IndexByte(s[i:], '\n')
			if end < 0 {
				break
			}
			i += end
			continue
		}
		if end, ok := skipOpaque(s, i); ok {
			b.WriteString(s[i:end])
			i = end
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// stripBlockComments removes terminated "/* */" comments.
func stripBlockComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "/*") {
			if end := strings.Index(s[i+2:], "*/"); end >= 0 {
				i += 2 + end + 2
				continue
			}
		}
		if end, ok := skipOpaque(s, i); ok {
			b.WriteString(s[i:end])
			i = end
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipOpaque reports whether a string literal or comment starts at i and, if
// so, the index just past its end.
func skipOpaque(s string, i int) (int, bool) {
	switch {
	case s[i] == '"' || s[i] == '\'':
		end, _ := scanString(s, i)
		return end, true
	case strings.HasPrefix(s[i:], "//"):
		if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
			return i + nl, true
		}
		return len(s), true
	case strings.HasPrefix(s[i:], "/*"):
		if end := strings.Index(s[i+2:], "*/"); end >= 0 {
			return i + 2 + end + 2, true
		}
		return len(s), true
	}
	return i, false
}

// scanString returns the index just past the string literal opened by the
// quote at i, and whether the literal was closed before the end of input.
func scanString(s string, i int) (int, bool) {
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j + 1, true
		}
	}
	return len(s), false
}

func isCommentStart(s string, i int) bool {
	return strings.HasPrefix(s[i:], "//") || strings.HasPrefix(s[i:], "/*")
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func skipSpaceAndComments(s string, i int) int {
	for {
		i = skipSpace(s, i)
		if i >= len(s) || !isCommentStart(s, i) {
			return i
		}
		i, _ = skipOpaque(s, i)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
