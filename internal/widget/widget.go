// Package widget defines dashboard widgets, their typed payloads, and the
// categories that group them.
package widget

import "github.com/google/uuid"

// Data is the type-specific payload of a widget. The set of implementations
// is closed: DonutData, SliderData and PlaceholderData.
type Data interface {
	Kind() Kind
	isData()
}

// Segment is one proportional arc of a donut.
type Segment struct {
	Value float64
	Color string
}

// DonutData drives a segmented ring with a center label.
type DonutData struct {
	Label    string
	Value    float64
	Total    float64
	Segments []Segment
}

// SliderData drives a single-handle range indicator.
type SliderData struct {
	Label string
	Value float64
	Max   float64
	Color string
}

// PlaceholderData is opaque; renderers never display it.
type PlaceholderData struct {
	Text string
}

func (DonutData) Kind() Kind       { return KindDonut }
func (SliderData) Kind() Kind      { return KindSlider }
func (PlaceholderData) Kind() Kind { return KindPlaceholder }

func (DonutData) isData()       {}
func (SliderData) isData()      {}
func (PlaceholderData) isData() {}

// Widget is a single dashboard tile.
// ID is assigned at creation and survives reordering; position within the
// owning category still determines display order.
type Widget struct {
	ID    string
	Title string
	Data  Data
}

// Kind returns the widget's kind, or KindUnknown when it carries no data.
func (w Widget) Kind() Kind {
	if w.Data == nil {
		return KindUnknown
	}
	return w.Data.Kind()
}

// Category is a named, ordered group of widgets.
type Category struct {
	Name    string
	Widgets []Widget
}

// NewID returns a fresh widget ID.
func NewID() string {
	return uuid.NewString()
}

// New creates a widget of the given kind with the default payload for it.
func New(kind Kind, title string) Widget {
	return Widget{
		ID:    NewID(),
		Title: title,
		Data:  DefaultData(kind),
	}
}

// DefaultData returns the payload synthesized for a newly added widget.
// Unknown kinds get nil.
func DefaultData(kind Kind) Data {
	switch kind {
	case KindDonut:
		return DonutData{
			Label: "New Data",
			Value: 0,
			Total: 100,
			Segments: []Segment{
				{Value: 50, Color: "blue"},
				{Value: 50, Color: "gray"},
			},
		}
	case KindSlider:
		return SliderData{
			Label: "New Slider",
			Value: 0,
			Max:   100,
			Color: "blue",
		}
	case KindPlaceholder:
		return PlaceholderData{Text: "No data"}
	}
	return nil
}

// Clone returns a deep copy of w.
func (w Widget) Clone() Widget {
	if d, ok := w.Data.(DonutData); ok {
		d.Segments = append([]Segment(nil), d.Segments...)
		w.Data = d
	}
	return w
}

// Clone returns a deep copy of c.
func (c Category) Clone() Category {
	out := Category{Name: c.Name}
	if c.Widgets != nil {
		out.Widgets = make([]Widget, len(c.Widgets))
		for i, w := range c.Widgets {
			out.Widgets[i] = w.Clone()
		}
	}
	return out
}

// CloneCategories deep-copies a category list.
func CloneCategories(cats []Category) []Category {
	if cats == nil {
		return nil
	}
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = c.Clone()
	}
	return out
}
