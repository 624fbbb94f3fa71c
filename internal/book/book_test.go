package book

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `[
  {
    "root": "/tmp/book",
    "config": {
      "book": {"title": "Notes", "src": "src"},
      "preprocessor": {"sinotca-flavord": {"threads": 2, "strict-version": true}}
    },
    "renderer": "html",
    "mdbook_version": "0.4.21",
    "__non_exhaustive": null
  },
  {
    "sections": [
      {"PartTitle": "Basics"},
      {"Chapter": {
        "name": "Intro",
        "content": "# Intro\n$a_1$\n",
        "number": [1],
        "sub_items": [
          {"Chapter": {
            "name": "Nested",
            "content": "$$x \\\\ y$$",
            "number": [1, 1],
            "sub_items": [],
            "path": "intro/nested.md",
            "source_path": "intro/nested.md",
            "parent_names": ["Intro"]
          }}
        ],
        "path": "intro.md",
        "source_path": "intro.md",
        "parent_names": []
      }},
      "Separator",
      {"Chapter": {
        "name": "Draft",
        "content": "",
        "number": null,
        "sub_items": [],
        "path": null,
        "source_path": null,
        "parent_names": []
      }}
    ],
    "__non_exhaustive": null
  }
]`

func TestParseInput(t *testing.T) {
	ctx, b, err := ParseInput(strings.NewReader(sampleInput))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/book", ctx.Root)
	assert.Equal(t, "html", ctx.Renderer)
	assert.Equal(t, "0.4.21", ctx.MdbookVersion)

	require.Len(t, b.Sections, 4)
	require.NotNil(t, b.Sections[0].PartTitle)
	assert.Equal(t, "Basics", *b.Sections[0].PartTitle)
	assert.True(t, b.Sections[2].Separator)

	intro := b.Sections[1].Chapter
	require.NotNil(t, intro)
	assert.Equal(t, []uint32{1}, intro.Number)
	require.Len(t, intro.SubItems, 1)
	assert.Equal(t, `$$x \\ y$$`, intro.SubItems[0].Chapter.Content)

	draft := b.Sections[3].Chapter
	require.NotNil(t, draft)
	assert.Nil(t, draft.Path)
	assert.Nil(t, draft.Number)
}

func TestParseInput_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "nope"},
		{name: "single element", input: `[{}]`},
		{name: "bad item", input: `[{}, {"sections": ["Bogus"]}]`},
		{name: "empty object item", input: `[{}, {"sections": [{}]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseInput(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestWriteBook_RoundTrip(t *testing.T) {
	_, b, err := ParseInput(strings.NewReader(sampleInput))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBook(&buf, b))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Contains(t, raw, "__non_exhaustive")
	assert.Nil(t, raw["__non_exhaustive"])

	sections := raw["sections"].([]any)
	require.Len(t, sections, 4)
	assert.Equal(t, "Separator", sections[2])
	assert.Equal(t, map[string]any{"PartTitle": "Basics"}, sections[0])

	draft := sections[3].(map[string]any)["Chapter"].(map[string]any)
	assert.Nil(t, draft["number"])
	assert.Equal(t, []any{}, draft["sub_items"])
	assert.Equal(t, []any{}, draft["parent_names"])

	// Decoding our own output gives the same tree back.
	var again Book
	require.NoError(t, json.Unmarshal(buf.Bytes(), &again))
	assert.Equal(t, b.Chapters()[1].Content, again.Chapters()[1].Content)
	assert.Len(t, again.Chapters(), 3)
}

func TestWriteBook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBook(&buf, &Book{}))
	assert.JSONEq(t, `{"sections": [], "__non_exhaustive": null}`, buf.String())
}

func TestChapters_Order(t *testing.T) {
	leaf := &Chapter{Name: "1.1"}
	b := &Book{Sections: []Item{
		PartTitleItem("Part"),
		ChapterItem(&Chapter{Name: "1", SubItems: []Item{ChapterItem(leaf)}}),
		SeparatorItem(),
		ChapterItem(&Chapter{Name: "2"}),
	}}

	var names []string
	b.ForEachChapter(func(ch *Chapter) { names = append(names, ch.Name) })
	assert.Equal(t, []string{"1", "1.1", "2"}, names)

	b.Chapters()[1].Content = "edited"
	assert.Equal(t, "edited", leaf.Content)
}

func TestPreprocessorTable(t *testing.T) {
	ctx, _, err := ParseInput(strings.NewReader(sampleInput))
	require.NoError(t, err)

	tbl, ok := ctx.PreprocessorTable("mdbook-sinotca-flavord", "sinotca-flavord")
	require.True(t, ok)
	assert.JSONEq(t, `{"threads": 2, "strict-version": true}`, string(tbl))

	_, ok = ctx.PreprocessorTable("other")
	assert.False(t, ok)

	_, ok = (&Context{}).PreprocessorTable("sinotca-flavord")
	assert.False(t, ok)
}

func TestItem_MarshalEmpty(t *testing.T) {
	_, err := json.Marshal(Item{})
	assert.Error(t, err)
}
