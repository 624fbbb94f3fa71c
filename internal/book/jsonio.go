package book

import (
	"encoding/json"
	"fmt"
	"io"
)

// Context describes the build the host is running.
type Context struct {
	Root          string                     `json:"root"`
	Config        map[string]json.RawMessage `json:"config"`
	Renderer      string                     `json:"renderer"`
	MdbookVersion string                     `json:"mdbook_version"`

	NonExhaustive json.RawMessage `json:"__non_exhaustive"`
}

// PreprocessorTable returns the raw [preprocessor.<name>] table from
// book.toml, trying each name in turn. ok is false when none is present.
func (c *Context) PreprocessorTable(names ...string) (json.RawMessage, bool) {
	raw, found := c.Config["preprocessor"]
	if !found {
		return nil, false
	}
	var tables map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tables); err != nil {
		return nil, false
	}
	for _, n := range names {
		if t, ok := tables[n]; ok {
			return t, true
		}
	}
	return nil, false
}

// ParseInput decodes the [context, book] pair the host writes to a
// preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	var pair []json.RawMessage
	if err := json.NewDecoder(r).Decode(&pair); err != nil {
		return nil, nil, fmt.Errorf("decode preprocessor input: %w", err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("decode preprocessor input: expected [context, book], got %d elements", len(pair))
	}
	var ctx Context
	if err := json.Unmarshal(pair[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("decode context: %w", err)
	}
	var b Book
	if err := json.Unmarshal(pair[1], &b); err != nil {
		return nil, nil, fmt.Errorf("decode book: %w", err)
	}
	return &ctx, &b, nil
}

// WriteBook encodes b the way the host expects it back on stdout.
func WriteBook(w io.Writer, b *Book) error {
	out := *b
	if out.Sections == nil {
		out.Sections = []Item{}
	}
	return json.NewEncoder(w).Encode(&out)
}
