package ui

import (
	"strings"

	"widgetdash/internal/widget"
)

// Entry is a widget as shown in the filtered view. Index is its position in
// the unfiltered category, which is what removal must use.
type Entry struct {
	Index  int
	Widget widget.Widget
}

// FilteredCategory is a category reduced to the widgets matching a query.
type FilteredCategory struct {
	Index   int
	Name    string
	Entries []Entry
}

// MatchesTitle reports whether title contains query, ignoring case.
// An empty query matches everything, including untitled widgets.
func MatchesTitle(title, query string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// Filter reduces every category to the widgets whose title matches query.
// Categories are never dropped, even when nothing in them matches.
func Filter(cats []widget.Category, query string) []FilteredCategory {
	out := make([]FilteredCategory, len(cats))
	for ci, c := range cats {
		fc := FilteredCategory{Index: ci, Name: c.Name, Entries: []Entry{}}
		for wi, w := range c.Widgets {
			if MatchesTitle(w.Title, query) {
				fc.Entries = append(fc.Entries, Entry{Index: wi, Widget: w})
			}
		}
		out[ci] = fc
	}
	return out
}
