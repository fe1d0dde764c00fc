package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected cards, borders
	ColorDanger    = "196" // Red - for delete controls, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBorder    = "238" // Dark gray - unselected card borders
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - dashboard and modal titles
	TitleWarning lipgloss.Style // Bold danger color - confirm titles
	Section      lipgloss.Style // Category headers

	// Box styles
	Box       lipgloss.Style // Modal box (highlight border)
	BoxDanger lipgloss.Style // Confirm box (danger border)
	Card      lipgloss.Style // Widget card
	CardFocus lipgloss.Style // Selected widget card

	// Text styles
	CardTitle lipgloss.Style
	Delete    lipgloss.Style // Delete control on cards
	AddCard   lipgloss.Style // "+ Add Widget" text
	Muted     lipgloss.Style
	Hint      lipgloss.Style
	Label     lipgloss.Style
	Details   lipgloss.Style
	Error     lipgloss.Style
	Field     lipgloss.Style // Unfocused form field label
	FieldOn   lipgloss.Style // Focused form field label
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		MarginTop(1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	CardFocus: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Delete: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	AddCard: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Field: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	FieldOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}
