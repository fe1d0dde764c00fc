package ui

import (
	"github.com/charmbracelet/lipgloss"

	"widgetdash/internal/render"
	"widgetdash/internal/ui/textutil"
)

const (
	// cardBodyHeight fits the tallest visualization (donut: 5 lines).
	cardBodyHeight = 5
	// cardHeight is the rendered height including title row and border.
	cardHeight   = cardBodyHeight + 1 + 2
	minCardWidth = 24
	cardGap      = 1
)

const (
	deleteGlyph  = "✕"
	addCardLabel = "+ Add Widget"
	untitled     = "(untitled)"
)

// cardStyle returns the frame for a card of outer width w.
func cardStyle(w int, selected bool) lipgloss.Style {
	s := Styles.Card
	if selected {
		s = Styles.CardFocus
	}
	return s.Width(w - 2).Height(cardBodyHeight + 1)
}

// renderWidgetCard draws a widget card: title and delete control on top,
// the visualization below.
func renderWidgetCard(ci int, e Entry, w int, selected bool, z *Zones) string {
	inner := w - 4
	titleWidth := max(inner-2, 1)

	title := Styles.CardTitle.Render(textutil.PadRight(e.Widget.Title, titleWidth))
	if e.Widget.Title == "" {
		title = Styles.Muted.Render(textutil.PadRight(untitled, titleWidth))
	}
	del := z.Mark(deleteZoneID(ci, e.Widget.ID), Styles.Delete.Render(deleteGlyph))

	content := title + " " + del + "\n" + render.Widget(e.Widget, inner, cardBodyHeight)
	return z.Mark(cardZoneID(ci, e.Widget.ID), cardStyle(w, selected).Render(content))
}

// renderAddCard draws the trailing "+ Add Widget" card of a category.
func renderAddCard(ci, w int, selected bool, z *Zones) string {
	inner := w - 4
	label := Styles.AddCard.Render(textutil.Truncate(addCardLabel, inner))
	content := lipgloss.Place(inner, cardBodyHeight+1, lipgloss.Center, lipgloss.Center, label)
	return z.Mark(addZoneID(ci), cardStyle(w, selected).Render(content))
}
