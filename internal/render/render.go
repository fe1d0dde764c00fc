// Package render turns widgets into terminal text.
//
// Every function here is pure: the same widget and size always produce the
// same string. Layout around the widget (card border, title, delete control)
// belongs to the ui package.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"widgetdash/internal/ui/textutil"
	"widgetdash/internal/widget"
)

// PlaceholderMessage is shown for placeholder widgets instead of their payload.
const PlaceholderMessage = "No Graph data available!"

// namedColors maps the color names used in widget payloads to ANSI 256 codes.
// Anything else is handed to lipgloss unchanged (hex or ANSI number).
var namedColors = map[string]string{
	"blue":   "33",
	"gray":   "245",
	"grey":   "245",
	"red":    "196",
	"yellow": "226",
	"orange": "208",
	"green":  "46",
	"cyan":   "51",
	"teal":   "37",
	"pink":   "205",
	"violet": "135",
	"grape":  "135",
	"indigo": "63",
	"lime":   "118",
	"dark":   "236",
}

// Color resolves a payload color name to a terminal color string.
func Color(name string) string {
	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return c
	}
	return name
}

// Number formats v without a trailing ".0" for whole numbers.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Widget renders w's visualization into a block width columns wide.
// height is only used to vertically center placeholders. Widgets without a
// known payload render as the empty string.
func Widget(w widget.Widget, width, height int) string {
	if width <= 0 {
		return ""
	}
	switch d := w.Data.(type) {
	case widget.DonutData:
		return Donut(d, width)
	case widget.SliderData:
		return Slider(d, width)
	case widget.PlaceholderData:
		return Placeholder(width, height)
	}
	return ""
}

var (
	ringStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

// Donut draws a segmented ring: a rounded band where each segment fills
// value percent of the cells and the rest stays empty, a center label
// "<label> (<total>)", and a line repeating the total.
func Donut(d widget.DonutData, width int) string {
	inner := max(width-2, 1)

	var band strings.Builder
	filled := 0
	for i, n := range segmentCells(d.Segments, inner) {
		if n == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(Color(d.Segments[i].Color)))
		band.WriteString(style.Render(strings.Repeat("█", n)))
		filled += n
	}
	if filled < inner {
		band.WriteString(emptyStyle.Render(strings.Repeat("░", inner-filled)))
	}

	top := ringStyle.Render("╭" + strings.Repeat("─", inner) + "╮")
	mid := ringStyle.Render("│") + band.String() + ringStyle.Render("│")
	bottom := ringStyle.Render("╰" + strings.Repeat("─", inner) + "╯")

	total := Number(d.Total)
	lines := []string{
		top,
		mid,
		bottom,
		labelStyle.Render(textutil.Center(d.Label+" ("+total+")", width)),
		totalStyle.Render(textutil.Center(total, width)),
	}
	return strings.Join(lines, "\n")
}

// segmentCells gives each segment value/100 of width cells, leaving the
// remainder for the empty band. Values summing past 100 are scaled to the
// sum so the ring is exactly full. Rounding uses the largest remainder
// method. Returns nil when no segment has a positive value.
func segmentCells(segs []widget.Segment, width int) []int {
	var sum float64
	for _, s := range segs {
		if s.Value > 0 {
			sum += s.Value
		}
	}
	if sum <= 0 || width <= 0 {
		return nil
	}
	scale := max(sum, 100)
	filled := int(math.Round(sum / scale * float64(width)))

	cells := make([]int, len(segs))
	rems := make([]float64, len(segs))
	used := 0
	for i, s := range segs {
		if s.Value <= 0 {
			continue
		}
		exact := s.Value / scale * float64(width)
		cells[i] = int(math.Floor(exact))
		rems[i] = exact - float64(cells[i])
		used += cells[i]
	}
	for used < filled {
		best := -1
		for i := range segs {
			if segs[i].Value <= 0 || rems[i] < 0 {
				continue
			}
			if best < 0 || rems[i] > rems[best] {
				best = i
			}
		}
		if best < 0 {
			break
		}
		cells[best]++
		rems[best] = -1
		used++
	}
	return cells
}

// Slider draws a fixed single-handle range control: the label, a track
// filled to value/max in the payload color, and one tick labeled with the
// current value under the handle.
func Slider(d widget.SliderData, width int) string {
	pct := sliderPercent(d.Value, d.Max)

	bar := progress.New(
		progress.WithSolidFill(Color(d.Color)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
		progress.WithFillCharacters('━', '─'),
	)

	return strings.Join([]string{
		labelStyle.Render(textutil.Truncate(d.Label, width)),
		bar.ViewAs(pct),
		tickLine(pct, Number(d.Value), width),
	}, "\n")
}

func sliderPercent(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, value/maxValue))
}

// tickLine places a marker under the handle with the value beside it,
// flipping the label to the left when it would overflow.
func tickLine(pct float64, label string, width int) string {
	pos := int(math.Round(pct * float64(width-1)))
	mark := "▲ " + label
	if pos+textutil.Width(mark) > width {
		mark = label + " ▲"
		pos = max(pos-textutil.Width(mark)+1, 0)
	}
	return textutil.Truncate(strings.Repeat(" ", pos)+mark, width)
}

// Placeholder centers the fixed no-data message in a width×height block.
func Placeholder(width, height int) string {
	msg := textutil.Truncate(PlaceholderMessage, width)
	return lipgloss.Place(width, max(height, 1), lipgloss.Center, lipgloss.Center,
		emptyStyle.Italic(true).Render(msg))
}
