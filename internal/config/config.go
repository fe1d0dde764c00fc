// Package config loads widgetdash settings and the optional seed dashboard
// from TOML.
//
// Example:
//
//	title = "CSPM Dashboard"
//	columns = 3
//
//	[[category]]
//	name = "Registry Scan"
//
//	  [[category.widget]]
//	  type = "slider"
//	  title = "Image Risk Assessment"
//	  label = "Critical"
//	  value = 50
//	  max = 1470
//	  color = "red"
package config

import (
	"widgetdash/internal/widget"
)

// Config is the top-level configuration.
type Config struct {
	Title         string           `toml:"title"`
	Columns       int              `toml:"columns"`
	ConfirmRemove bool             `toml:"confirm_remove"`
	LogFile       string           `toml:"log_file"`
	Categories    []CategoryConfig `toml:"category"`
}

// CategoryConfig is one [[category]] table.
type CategoryConfig struct {
	Name    string         `toml:"name"`
	Widgets []WidgetConfig `toml:"widget"`
}

// WidgetConfig is one [[category.widget]] table. Which fields matter
// depends on Type; the rest are ignored.
type WidgetConfig struct {
	Type     string          `toml:"type"`
	Title    string          `toml:"title"`
	Label    string          `toml:"label"`
	Value    float64         `toml:"value"`
	Total    float64         `toml:"total"`
	Max      float64         `toml:"max"`
	Color    string          `toml:"color"`
	Text     string          `toml:"text"`
	Segments []SegmentConfig `toml:"segments"`
}

// SegmentConfig is one donut segment.
type SegmentConfig struct {
	Value float64 `toml:"value"`
	Color string  `toml:"color"`
}

const (
	DefaultTitle   = "CSPM Dashboard"
	DefaultColumns = 3
	MaxColumns     = 6
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Title:   DefaultTitle,
		Columns: DefaultColumns,
	}
}

// Seed returns the seed dashboard: the configured categories when any
// are present, otherwise the built-in seed.
func (c *Config) Seed() []widget.Category {
	if len(c.Categories) == 0 {
		return widget.Seed()
	}
	out := make([]widget.Category, len(c.Categories))
	for i, cc := range c.Categories {
		out[i] = widget.Category{Name: cc.Name, Widgets: make([]widget.Widget, 0, len(cc.Widgets))}
		for _, wc := range cc.Widgets {
			out[i].Widgets = append(out[i].Widgets, wc.Widget())
		}
	}
	return out
}

// Widget converts the table into a widget. An unrecognized type yields a
// widget without data, which renders as nothing.
func (wc WidgetConfig) Widget() widget.Widget {
	w := widget.Widget{ID: widget.NewID(), Title: wc.Title}
	kind, err := widget.ParseKind(wc.Type)
	if err != nil {
		return w
	}
	switch kind {
	case widget.KindDonut:
		segs := make([]widget.Segment, len(wc.Segments))
		for i, s := range wc.Segments {
			segs[i] = widget.Segment{Value: s.Value, Color: s.Color}
		}
		w.Data = widget.DonutData{Label: wc.Label, Value: wc.Value, Total: wc.Total, Segments: segs}
	case widget.KindSlider:
		w.Data = widget.SliderData{Label: wc.Label, Value: wc.Value, Max: wc.Max, Color: wc.Color}
	case widget.KindPlaceholder:
		w.Data = widget.PlaceholderData{Text: wc.Text}
	}
	return w
}

// SetColumns overrides the column count, clamped to [1, MaxColumns].
func (c *Config) SetColumns(n int) {
	c.Columns = min(max(n, 1), MaxColumns)
}

// normalize clamps values that would break layout.
func (c *Config) normalize() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Columns <= 0 {
		c.Columns = DefaultColumns
	}
	if c.Columns > MaxColumns {
		c.Columns = MaxColumns
	}
}
