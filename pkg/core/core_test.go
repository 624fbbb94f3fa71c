package core

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Smoke(t *testing.T) {
	assert.Equal(t, `$x\_1$`, Escape("$x_1$"))
	assert.Equal(t, []string{"a$", "b"}, Split("a$b", InlineDelimiter))
	assert.Equal(t, `$$\\\\$$`, Transform(`$$\\$$`, DisplayDelimiter))
	assert.True(t, SupportsRenderer("html"))
	assert.False(t, SupportsRenderer("epub"))
}

func TestEscapeBook(t *testing.T) {
	b := &Book{}
	b.Sections = append(b.Sections, ChapterItem(&Chapter{Name: "c", Content: "$a_b$ c_d"}))
	st, err := EscapeBook(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Inline)
	assert.Equal(t, `$a\_b$ c_d`, b.Chapters()[0].Content)
}

func TestProcessJSON(t *testing.T) {
	in := `[{"root": "", "config": {}, "renderer": "html", "mdbook_version": "0.4.21"},
	        {"sections": [{"Chapter": {"name": "c", "content": "$t_n$", "number": null, "sub_items": [], "path": null, "source_path": null, "parent_names": []}}], "__non_exhaustive": null}]`
	var out bytes.Buffer
	require.NoError(t, ProcessJSON(context.Background(), strings.NewReader(in), &out))
	assert.Contains(t, out.String(), `$t\\_n$`)

	assert.Error(t, ProcessJSON(context.Background(), strings.NewReader("[]"), &out))
}
