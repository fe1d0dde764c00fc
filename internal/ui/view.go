package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: the dashboard and every modal implement it.
// Update returns the (possibly replaced) View so overlays can swap themselves.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
