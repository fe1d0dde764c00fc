// Package textutil measures and fits text to terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal cells s occupies. s must not
// contain escape sequences; use StyledWidth for rendered output.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth returns the cell width of the widest line of rendered output.
func StyledWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most width cells, ending in Ellipsis when
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	if width <= Width(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight fits s into exactly width cells, truncating or space-padding.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	return s + strings.Repeat(" ", width-Width(s))
}

// Center fits s into exactly width cells with s centered. Odd leftover
// space goes to the right.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	pad := width - Width(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
