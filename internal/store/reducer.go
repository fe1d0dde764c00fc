package store

import (
	"errors"
	"fmt"

	"widgetdash/internal/widget"
)

// InsertPosition is where AddWidget places new widgets. The first two slots
// of a category hold its headline widgets; lists shorter than that get the
// new widget appended.
const InsertPosition = 2

// ErrIndexOutOfRange is matched (via errors.Is) by every *IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrWidgetNotFound is returned when an ID does not resolve to a widget.
var ErrWidgetNotFound = errors.New("widget not found")

// IndexError reports a category or widget index outside the current state.
// Indices always come from rendered state, so this is a caller bug.
type IndexError struct {
	What  string // "category" or "widget"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) true for any IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func checkCategory(cats []widget.Category, ci int) error {
	if ci < 0 || ci >= len(cats) {
		return &IndexError{What: "category", Index: ci, Len: len(cats)}
	}
	return nil
}

// withWidgets returns a shallow copy of cats where category ci has widgets ws.
// The input slice is never written to.
func withWidgets(cats []widget.Category, ci int, ws []widget.Widget) []widget.Category {
	out := make([]widget.Category, len(cats))
	copy(out, cats)
	out[ci] = widget.Category{Name: cats[ci].Name, Widgets: ws}
	return out
}

// AddWidget returns cats with w inserted into category ci at
// min(InsertPosition, len(widgets)).
func AddWidget(cats []widget.Category, ci int, w widget.Widget) ([]widget.Category, error) {
	if err := checkCategory(cats, ci); err != nil {
		return nil, err
	}
	old := cats[ci].Widgets
	pos := min(InsertPosition, len(old))

	ws := make([]widget.Widget, 0, len(old)+1)
	ws = append(ws, old[:pos]...)
	ws = append(ws, w)
	ws = append(ws, old[pos:]...)
	return withWidgets(cats, ci, ws), nil
}

// RemoveWidget returns cats with the widget at wi removed from category ci.
func RemoveWidget(cats []widget.Category, ci, wi int) ([]widget.Category, error) {
	if err := checkCategory(cats, ci); err != nil {
		return nil, err
	}
	old := cats[ci].Widgets
	if wi < 0 || wi >= len(old) {
		return nil, &IndexError{What: "widget", Index: wi, Len: len(old)}
	}

	ws := make([]widget.Widget, 0, len(old)-1)
	ws = append(ws, old[:wi]...)
	ws = append(ws, old[wi+1:]...)
	return withWidgets(cats, ci, ws), nil
}

// RemoveWidgetByID resolves id to its current index in category ci and
// removes it.
func RemoveWidgetByID(cats []widget.Category, ci int, id string) ([]widget.Category, error) {
	if err := checkCategory(cats, ci); err != nil {
		return nil, err
	}
	wi := indexOf(cats[ci].Widgets, id)
	if wi < 0 {
		return nil, fmt.Errorf("category %d: %q: %w", ci, id, ErrWidgetNotFound)
	}
	return RemoveWidget(cats, ci, wi)
}

func indexOf(ws []widget.Widget, id string) int {
	if id == "" {
		return -1
	}
	for i, w := range ws {
		if w.ID == id {
			return i
		}
	}
	return -1
}
