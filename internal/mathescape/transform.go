package mathescape

import "strings"

const (
	// DisplayDelimiter bounds block math.
	DisplayDelimiter = "$$"
	// InlineDelimiter bounds inline math.
	InlineDelimiter = "$"
)

// Transform rewrites every region of text enclosed by delimiter. Segments
// returned by Split alternate between outside (even index) and inside (odd
// index); only inside segments are rewritten.
//
// A trailing region with no closing delimiter still sits at an odd index and
// is rewritten as well.
func Transform(text, delimiter string) string {
	segs := Split(text, delimiter)
	if len(segs) < 2 {
		return text
	}
	for i := 1; i < len(segs); i += 2 {
		segs[i] = applyRules(segs[i])
	}
	return strings.Join(segs, "")
}

// Regions reports how many segments Transform would rewrite.
func Regions(text, delimiter string) int {
	return len(Split(text, delimiter)) / 2
}

// Escape runs the display pass and then the inline pass over text. The
// order matters: "$$" starts with "$", so the inline pass alone would read a
// display block as two empty inline regions.
func Escape(text string) string {
	return Transform(Transform(text, DisplayDelimiter), InlineDelimiter)
}

// Stats counts the regions each pass of Escape rewrote.
type Stats struct {
	Display int `json:"display"`
	Inline  int `json:"inline"`
}

// Total is the number of rewritten regions across both passes.
func (s Stats) Total() int { return s.Display + s.Inline }

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Display += o.Display
	s.Inline += o.Inline
}

// EscapeStats is Escape plus the region counts of each pass.
func EscapeStats(text string) (string, Stats) {
	var st Stats
	st.Display = Regions(text, DisplayDelimiter)
	text = Transform(text, DisplayDelimiter)
	st.Inline = Regions(text, InlineDelimiter)
	return Transform(text, InlineDelimiter), st
}
