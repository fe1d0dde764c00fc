package ui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetdash/internal/render"
	"widgetdash/internal/widget"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestDashboard(t *testing.T) (*DashboardView, []widget.Category) {
	t.Helper()
	cats := widget.Seed()
	return NewDashboardView("CSPM Dashboard", 3, cats, nil), cats
}

func press(d *DashboardView, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = d.Update(keyMsg(k))
	}
	return cmd
}

func TestDashboardView_HorizontalNavigation(t *testing.T) {
	d, _ := newTestDashboard(t)
	assert.Equal(t, Cursor{}, d.Cursor())

	press(d, "l")
	assert.Equal(t, Cursor{Category: 0, Slot: 1}, d.Cursor())
	press(d, "right")
	assert.Equal(t, Cursor{Category: 0, Slot: 2}, d.Cursor(), "add card is the last slot")
	press(d, "l")
	assert.Equal(t, Cursor{Category: 1, Slot: 0}, d.Cursor(), "wraps into next category")
	press(d, "h")
	assert.Equal(t, Cursor{Category: 0, Slot: 2}, d.Cursor())

	press(d, "left", "left", "left")
	assert.Equal(t, Cursor{}, d.Cursor(), "stays on first card")
}

func TestDashboardView_VerticalNavigation(t *testing.T) {
	d, _ := newTestDashboard(t)
	d.SetCursor(Cursor{Category: 0, Slot: 1})

	press(d, "j")
	assert.Equal(t, Cursor{Category: 1, Slot: 1}, d.Cursor())
	press(d, "down")
	assert.Equal(t, Cursor{Category: 2, Slot: 1}, d.Cursor())
	press(d, "j")
	assert.Equal(t, Cursor{Category: 2, Slot: 1}, d.Cursor(), "stays in last category")
	press(d, "k", "up")
	assert.Equal(t, Cursor{Category: 0, Slot: 1}, d.Cursor())
}

func TestDashboardView_VerticalWithinCategory(t *testing.T) {
	d := NewDashboardView("t", 2, widget.Seed(), nil)
	// Two columns: [w0 w1] [add].
	press(d, "j")
	assert.Equal(t, Cursor{Category: 0, Slot: 2}, d.Cursor())
	press(d, "k")
	assert.Equal(t, Cursor{Category: 0, Slot: 0}, d.Cursor())
	d.SetCursor(Cursor{Category: 1, Slot: 1})
	press(d, "k")
	assert.Equal(t, Cursor{Category: 0, Slot: 2}, d.Cursor(), "moves into the last row of the previous category")
}

func TestDashboardView_JumpKeys(t *testing.T) {
	d, _ := newTestDashboard(t)
	press(d, "G")
	assert.Equal(t, Cursor{Category: 2, Slot: 2}, d.Cursor())
	press(d, "g")
	assert.Equal(t, Cursor{}, d.Cursor())
}

func TestDashboardView_EnterOnAddCard(t *testing.T) {
	d, _ := newTestDashboard(t)
	d.SetCursor(Cursor{Category: 1, Slot: 2})

	cmd := press(d, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, ShowAddWidgetMsg{Category: 1, Preselect: true}, cmd())

	d.SetCursor(Cursor{Category: 1, Slot: 0})
	assert.Nil(t, press(d, "enter"), "enter on a widget card does nothing")
}

func TestDashboardView_GlobalAdd(t *testing.T) {
	d, _ := newTestDashboard(t)
	cmd := press(d, "a")
	require.NotNil(t, cmd)
	assert.Equal(t, ShowAddWidgetMsg{}, cmd())
}

func TestDashboardView_DeleteRequestsRemoval(t *testing.T) {
	d, cats := newTestDashboard(t)
	d.SetCursor(Cursor{Category: 2, Slot: 1})

	cmd := press(d, "x")
	require.NotNil(t, cmd)
	assert.Equal(t, RequestRemoveWidgetMsg{
		Category: 2,
		ID:       cats[2].Widgets[1].ID,
		Title:    "Image Security Issues",
	}, cmd())

	d.SetCursor(Cursor{Category: 2, Slot: 2})
	assert.Nil(t, press(d, "x"), "add card cannot be removed")
}

func TestDashboardView_Search(t *testing.T) {
	d, _ := newTestDashboard(t)
	d.SetCursor(Cursor{Category: 2, Slot: 2})

	press(d, "/")
	require.True(t, d.Searching())
	typeText(func(m tea.Msg) { d.Update(m) }, "namespace")

	assert.Equal(t, "namespace", d.Query())
	vis := d.Visible()
	require.Len(t, vis, 3, "categories are never hidden")
	assert.Empty(t, vis[0].Entries)
	require.Len(t, vis[1].Entries, 1)
	assert.Equal(t, "Top 5 Namespace Specific Alerts", vis[1].Entries[0].Widget.Title)
	assert.Empty(t, vis[2].Entries)
	assert.Equal(t, Cursor{Category: 2, Slot: 0}, d.Cursor(), "cursor clamps to the filtered view")

	press(d, "esc")
	assert.False(t, d.Searching())
	assert.Equal(t, "namespace", d.Query(), "leaving the box keeps the filter")

	// Navigation keys go back to cards once search is closed.
	press(d, "g")
	assert.Equal(t, Cursor{}, d.Cursor())
}

func TestDashboardView_SearchKeysDoNotNavigate(t *testing.T) {
	d, _ := newTestDashboard(t)
	press(d, "/")
	press(d, "a", "j")
	assert.Equal(t, "aj", d.Query())
	assert.Equal(t, Cursor{}, d.Cursor())
}

func TestDashboardView_SetCategoriesRefilters(t *testing.T) {
	d, cats := newTestDashboard(t)
	d.SetQuery("alerts")
	require.Len(t, d.Visible()[1].Entries, 2)

	cats[1].Widgets = cats[1].Widgets[:1]
	d.SetCategories(cats)
	assert.Len(t, d.Visible()[1].Entries, 1)

	d.SetQuery("")
	assert.Len(t, d.Visible()[0].Entries, 2)
}

func TestDashboardView_Empty(t *testing.T) {
	d := NewDashboardView("t", 3, nil, nil)
	_, _, ok := d.Selected()
	assert.False(t, ok)
	press(d, "l", "j", "k", "h", "G", "enter", "x")
	assert.Equal(t, Cursor{}, d.Cursor())
	assert.Contains(t, d.View(), "t")
}

func TestDashboardView_ColumnsShrinkToFit(t *testing.T) {
	d, _ := newTestDashboard(t)
	assert.Equal(t, 3, d.cols())

	d.Update(tea.WindowSizeMsg{Width: 50, Height: 30})
	assert.Equal(t, 2, d.cols())

	d.Update(tea.WindowSizeMsg{Width: 20, Height: 30})
	assert.Equal(t, 1, d.cols())
	assert.Equal(t, minCardWidth, d.cardWidth())
}

func TestDashboardView_View(t *testing.T) {
	d, _ := newTestDashboard(t)
	out := d.View()

	for _, want := range []string{
		"CSPM Dashboard",
		"CSPM Executive Dashboard",
		"CWPP Dashboard",
		"Registry Scan",
		"Cloud Accounts",
		"Connected (2)",
		render.PlaceholderMessage,
		"Critical",
		addCardLabel,
		searchHintText,
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 2, strings.Count(out, render.PlaceholderMessage))
	assert.Equal(t, 3, strings.Count(out, "+ Add Widget")-1, "one add card per category plus the header button")
}

func TestDashboardView_ViewFitsWindow(t *testing.T) {
	d, _ := newTestDashboard(t)
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	d.SetCursor(Cursor{Category: 2, Slot: 0})

	out := d.View()
	assert.LessOrEqual(t, lipgloss.Height(out), 20)
	assert.Contains(t, out, "Registry Scan", "scrolls the selected card into view")
}

func TestDashboardView_ClickScrollsCardIntoView(t *testing.T) {
	zones := NewZones()
	t.Cleanup(zones.Close)
	cats := widget.Seed()
	d := NewDashboardView("CSPM Dashboard", 3, cats, zones)
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	d.View()
	require.Equal(t, 0, d.viewport.YOffset)

	// Scan the whole body so the off-screen card has a recorded position.
	body, _ := d.renderBody()
	zones.Scan(d.renderHeader() + "\n" + body)
	id := cardZoneID(2, cats[2].Widgets[1].ID)
	require.Eventually(t, func() bool {
		info := zones.m.Get(id)
		return info != nil && !info.IsZero()
	}, time.Second, 10*time.Millisecond)
	info := zones.m.Get(id)

	_, cmd := d.Update(tea.MouseMsg{X: info.StartX, Y: info.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, Cursor{Category: 2, Slot: 1}, d.Cursor())

	out := d.View()
	assert.Greater(t, d.viewport.YOffset, 0)
	assert.Contains(t, out, "Image Security Issues")
}

func TestDashboardView_MouseWithoutZones(t *testing.T) {
	d, _ := newTestDashboard(t)
	_, cmd := d.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, Cursor{}, d.Cursor())
}
