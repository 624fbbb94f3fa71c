package book

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Book is the document tree the host hands to a preprocessor.
type Book struct {
	Sections []Item `json:"sections"`

	// NonExhaustive is an opaque marker the host always emits as null.
	NonExhaustive json.RawMessage `json:"__non_exhaustive"`
}

// Chapter is one content unit of the book. Content is the only field a
// preprocessor in this module rewrites.
type Chapter struct {
	Name        string   `json:"name"`
	Content     string   `json:"content"`
	Number      []uint32 `json:"number"`
	SubItems    []Item   `json:"sub_items"`
	Path        *string  `json:"path"`
	SourcePath  *string  `json:"source_path"`
	ParentNames []string `json:"parent_names"`
}

// MarshalJSON writes empty lists instead of null; the host rejects null
// sub_items and parent_names.
func (ch *Chapter) MarshalJSON() ([]byte, error) {
	type plain Chapter
	out := plain(*ch)
	if out.SubItems == nil {
		out.SubItems = []Item{}
	}
	if out.ParentNames == nil {
		out.ParentNames = []string{}
	}
	return json.Marshal(out)
}

// Item is one entry of a section list: a chapter, a separator or a part
// title. Exactly one form is set.
type Item struct {
	Chapter   *Chapter
	Separator bool
	PartTitle *string
}

const separatorTag = "Separator"

// MarshalJSON encodes the item in the host's externally tagged form.
func (it Item) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{"Chapter": it.Chapter})
	case it.PartTitle != nil:
		return json.Marshal(map[string]string{"PartTitle": *it.PartTitle})
	case it.Separator:
		return json.Marshal(separatorTag)
	default:
		return nil, errors.New("empty book item")
	}
}

// UnmarshalJSON decodes "Separator", {"Chapter": {...}} or {"PartTitle": "..."}.
func (it *Item) UnmarshalJSON(b []byte) error {
	*it = Item{}
	var tag string
	if err := json.Unmarshal(b, &tag); err == nil {
		if tag != separatorTag {
			return fmt.Errorf("unknown book item %q", tag)
		}
		it.Separator = true
		return nil
	}
	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(b, &tagged); err != nil {
		return fmt.Errorf("decode book item: %w", err)
	}
	if tagged.Chapter == nil && tagged.PartTitle == nil {
		return fmt.Errorf("unknown book item %s", string(b))
	}
	it.Chapter = tagged.Chapter
	it.PartTitle = tagged.PartTitle
	return nil
}

// ChapterItem wraps ch as a section entry.
func ChapterItem(ch *Chapter) Item { return Item{Chapter: ch} }

// SeparatorItem returns a separator entry.
func SeparatorItem() Item { return Item{Separator: true} }

// PartTitleItem returns a part title entry.
func PartTitleItem(title string) Item { return Item{PartTitle: &title} }
