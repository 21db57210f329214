package extract

import "strings"

// Repair rewrites near-JSON produced by language models into JSON:
//
//   - bare object keys are quoted ({name: "x"} becomes {"name": "x"}),
//   - trailing commas before '}' or ']' are dropped,
//   - single-quoted strings in key or value position become double-quoted.
//
// Text outside of those patterns, including surrounding prose, is copied
// through unchanged. Valid JSON is returned as is.
func Repair(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 16)

	runes := []rune(text)
	// last significant (non-space) rune written outside of a string
	var last rune

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '"':
			end := scanDoubleQuoted(runes, i)
			b.WriteString(string(runes[i:end]))
			i = end - 1
			last = '"'

		case r == '\'' && opensValue(last):
			quoted, end := convertSingleQuoted(runes, i)
			b.WriteString(quoted)
			i = end - 1
			last = '"'

		case r == ',':
			if next := nextSignificant(runes, i+1); next == '}' || next == ']' {
				continue
			}
			b.WriteRune(r)
			last = r

		case isKeyStart(r) && (last == '{' || last == ','):
			end := i
			for end < len(runes) && isKeyPart(runes[end]) {
				end++
			}
			word := string(runes[i:end])
			if nextSignificant(runes, end) == ':' {
				b.WriteString(`"` + word + `"`)
				last = '"'
			} else {
				b.WriteString(word)
				last = runes[end-1]
			}
			i = end - 1

		default:
			b.WriteRune(r)
			if !isSpace(r) {
				last = r
			}
		}
	}

	return b.String()
}

// scanDoubleQuoted returns the index just past the closing quote of the
// string starting at start, or len(runes) if it is unterminated.
func scanDoubleQuoted(runes []rune, start int) int {
	for i := start + 1; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(runes)
}

// convertSingleQuoted rewrites the single-quoted string starting at start as a
// double-quoted JSON string. Unterminated strings are closed at end of input.
func convertSingleQuoted(runes []rune, start int) (string, int) {
	var b strings.Builder
	b.WriteByte('"')

	i := start + 1
	for ; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			if next == '\'' {
				b.WriteRune('\'')
			} else {
				b.WriteRune(r)
				b.WriteRune(next)
			}
			i++
			continue
		}
		if r == '\'' {
			i++
			break
		}
		if r == '"' {
			b.WriteString(`\"`)
			continue
		}
		b.WriteRune(r)
	}

	b.WriteByte('"')
	return b.String(), i
}

func nextSignificant(runes []rune, from int) rune {
	for i := from; i < len(runes); i++ {
		if !isSpace(runes[i]) {
			return runes[i]
		}
	}
	return 0
}

// opensValue reports whether a quote following prev starts a key or value.
func opensValue(prev rune) bool {
	switch prev {
	case '{', '[', ',', ':':
		return true
	}
	return false
}

func isKeyStart(r rune) bool {
	return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isKeyPart(r rune) bool {
	return isKeyStart(r) || r == '-' || (r >= '0' && r <= '9')
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
