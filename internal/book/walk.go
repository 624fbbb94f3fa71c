package book

// Chapters returns every chapter of the book in reading order, nested
// chapters directly after their parent. The pointers alias the tree, so
// writing through them edits the book.
func (b *Book) Chapters() []*Chapter {
	var out []*Chapter
	collect(b.Sections, &out)
	return out
}

func collect(items []Item, out *[]*Chapter) {
	for i := range items {
		ch := items[i].Chapter
		if ch == nil {
			continue
		}
		*out = append(*out, ch)
		collect(ch.SubItems, out)
	}
}

// ForEachChapter calls fn for every chapter in reading order.
func (b *Book) ForEachChapter(fn func(*Chapter)) {
	for _, ch := range b.Chapters() {
		fn(ch)
	}
}
