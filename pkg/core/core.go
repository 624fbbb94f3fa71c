package core

import (
	"context"
	"io"

	"github.com/sinotca/mdbook-sinotca-flavord/internal/book"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/mathescape"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/preprocessor"
)

// Re-export selected internal types as a stable public API surface.
type Stats = mathescape.Stats
type Book = book.Book
type Chapter = book.Chapter
type Item = book.Item

const (
	DisplayDelimiter = mathescape.DisplayDelimiter
	InlineDelimiter  = mathescape.InlineDelimiter
)

// Escape rewrites every math region of text for MathJax.
func Escape(text string) string { return mathescape.Escape(text) }

// Split cuts text into segments ending at unescaped delimiters.
func Split(text, delimiter string) []string { return mathescape.Split(text, delimiter) }

// Transform rewrites the regions bounded by a single delimiter.
func Transform(text, delimiter string) string { return mathescape.Transform(text, delimiter) }

// ChapterItem wraps ch as a section entry of a Book.
func ChapterItem(ch *Chapter) Item { return book.ChapterItem(ch) }

// SupportsRenderer reports whether the preprocessor applies to renderer.
func SupportsRenderer(renderer string) bool {
	return preprocessor.New(preprocessor.Options{}).SupportsRenderer(renderer)
}

// EscapeBook escapes every chapter of b in place and returns the region
// counts.
func EscapeBook(ctx context.Context, b *Book) (Stats, error) {
	res, err := preprocessor.New(preprocessor.Options{}).Run(ctx, b)
	return res.Stats, err
}

// ProcessJSON reads the host's [context, book] input from r and writes the
// escaped book to w.
func ProcessJSON(ctx context.Context, r io.Reader, w io.Writer) error {
	_, b, err := book.ParseInput(r)
	if err != nil {
		return err
	}
	if _, err := EscapeBook(ctx, b); err != nil {
		return err
	}
	return book.WriteBook(w, b)
}
