package mathescape

import "strings"

// Split cuts text after every occurrence of delimiter, keeping the delimiter
// at the end of the left piece. An occurrence preceded by a backslash does
// not end a segment; it is merged with whatever follows it.
//
// Joining the result always reproduces text. Every element except possibly
// the last ends with delimiter.
func Split(text, delimiter string) []string {
	if delimiter == "" || !strings.Contains(text, delimiter) {
		return []string{text}
	}
	raw := strings.SplitAfter(text, delimiter)
	// SplitAfter leaves an empty tail when text ends with the delimiter.
	if n := len(raw); n > 1 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	escaped := `\` + delimiter
	out := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if !strings.HasSuffix(raw[i], escaped) || i+1 == len(raw) {
			out = append(out, raw[i])
			continue
		}
		var b strings.Builder
		b.WriteString(raw[i])
		for strings.HasSuffix(b.String(), escaped) && i+1 < len(raw) {
			i++
			b.WriteString(raw[i])
		}
		out = append(out, b.String())
	}
	return out
}
