package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"widgetdash/internal/store"
	"widgetdash/internal/widget"
)

func newTestApp(t *testing.T, opts Options) (*AppModel, tea.Model) {
	t.Helper()
	if opts.Title == "" {
		opts.Title = "CSPM Dashboard"
	}
	if opts.Columns == 0 {
		opts.Columns = 3
	}
	st := store.New(widget.Seed())
	a := NewAppModel(context.Background(), st, opts)
	t.Cleanup(a.Close)
	return a, a.AsTeaModel()
}

func sendKeys(m tea.Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// follow runs cmd and feeds its message back into m.
func follow(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())
	return next
}

func titles(c widget.Category) []string {
	out := make([]string, len(c.Widgets))
	for i, w := range c.Widgets {
		out[i] = w.Title
	}
	return out
}

func openAddForm(t *testing.T, a *AppModel, m tea.Model) *AddWidgetModal {
	t.Helper()
	follow(t, m, sendKeys(m, "a"))
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	modal, ok := top.View.(*AddWidgetModal)
	require.True(t, ok, "expected AddWidgetModal, got %T", top.View)
	return modal
}

func TestApp_AddWidgetThroughForm(t *testing.T) {
	a, m := newTestApp(t, Options{})
	modal := openAddForm(t, a, m)
	assert.Equal(t, ModeModal, a.Mode())
	assert.Equal(t, fieldCategory, modal.Focused())

	sendKeys(m, "right", "tab")
	typeText(func(msg tea.Msg) { m.Update(msg) }, "Test")
	follow(t, m, sendKeys(m, "enter"))

	cats := a.Store.Categories()
	assert.Equal(t, []string{"Cloud Accounts", "Cloud Account Risk", "Test"}, titles(cats[0]))
	added := cats[0].Widgets[2]
	assert.Equal(t, widget.KindDonut, added.Kind())
	assert.Equal(t, widget.DefaultData(widget.KindDonut), added.Data)
	assert.NotEmpty(t, added.ID)

	assert.Equal(t, 0, a.Overlays.Len(), "form closes on success")
	assert.Equal(t, ModeBrowse, a.Mode())
	assert.Len(t, a.Dashboard.Categories()[0].Widgets, 3, "dashboard refreshed from the store")
	for i := 1; i < len(cats); i++ {
		assert.Len(t, cats[i].Widgets, 2, "other categories untouched")
	}
}

func TestApp_InsertPositionIsFixed(t *testing.T) {
	a, m := newTestApp(t, Options{})
	for _, title := range []string{"one", "two"} {
		openAddForm(t, a, m)
		sendKeys(m, "right", "right", "right", "tab")
		typeText(func(msg tea.Msg) { m.Update(msg) }, title)
		follow(t, m, sendKeys(m, "enter"))
	}
	assert.Equal(t,
		[]string{"Image Risk Assessment", "Image Security Issues", "two", "one"},
		titles(a.Store.Categories()[2]))
}

func TestApp_FormResetsAfterSubmit(t *testing.T) {
	a, m := newTestApp(t, Options{})
	openAddForm(t, a, m)
	sendKeys(m, "right", "tab")
	typeText(func(msg tea.Msg) { m.Update(msg) }, "Test")
	sendKeys(m, "tab", "right")
	require.Equal(t, widget.KindPlaceholder, a.Form.Kind)
	follow(t, m, sendKeys(m, "enter"))

	assert.Equal(t, widget.KindPlaceholder, a.Store.Categories()[0].Widgets[2].Kind())
	assert.Equal(t, NewAddWidgetForm(), a.Form)

	modal := openAddForm(t, a, m)
	assert.Equal(t, fieldCategory, modal.Focused())
	assert.Contains(t, modal.View(), "Select category")
	assert.Contains(t, modal.View(), "Donut Chart")
}

func TestApp_SubmitWithoutCategoryIsNoop(t *testing.T) {
	a, m := newTestApp(t, Options{})
	before := a.Store.Categories()

	openAddForm(t, a, m)
	sendKeys(m, "tab")
	typeText(func(msg tea.Msg) { m.Update(msg) }, "Orphan")
	follow(t, m, sendKeys(m, "enter"))

	assert.Equal(t, before, a.Store.Categories())
	assert.Equal(t, 1, a.Overlays.Len(), "form stays open")
	assert.Equal(t, "Orphan", a.Form.Title)
	assert.Empty(t, a.Status)
}

func TestApp_CancelKeepsFormValues(t *testing.T) {
	a, m := newTestApp(t, Options{})
	before := a.Store.Categories()

	openAddForm(t, a, m)
	sendKeys(m, "right", "right", "tab")
	typeText(func(msg tea.Msg) { m.Update(msg) }, "Draft")
	sendKeys(m, "esc")

	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, before, a.Store.Categories())
	require.NotNil(t, a.Form.Category)
	assert.Equal(t, 1, *a.Form.Category)
	assert.Equal(t, "Draft", a.Form.Title)

	modal := openAddForm(t, a, m)
	assert.Contains(t, modal.View(), "Draft")
	assert.Contains(t, modal.View(), "CWPP Dashboard")
}

func TestApp_AddCardPreselectsCategory(t *testing.T) {
	a, m := newTestApp(t, Options{})
	a.Dashboard.SetCursor(Cursor{Category: 2, Slot: 2})

	follow(t, m, sendKeys(m, "enter"))
	require.Equal(t, 1, a.Overlays.Len())
	require.NotNil(t, a.Form.Category)
	assert.Equal(t, 2, *a.Form.Category)
	top, _ := a.Overlays.Peek()
	assert.Equal(t, fieldTitle, top.View.(*AddWidgetModal).Focused())
}

func TestApp_ShowAddIgnoredWhileModalOpen(t *testing.T) {
	a, m := newTestApp(t, Options{})
	openAddForm(t, a, m)
	m.Update(ShowAddWidgetMsg{Category: 1, Preselect: true})
	assert.Equal(t, 1, a.Overlays.Len())
	assert.Nil(t, a.Form.Category)
}

func TestApp_RemoveUnderFilterUsesUnfilteredIndex(t *testing.T) {
	a, m := newTestApp(t, Options{})

	sendKeys(m, "/")
	require.Equal(t, ModeSearch, a.Mode())
	typeText(func(msg tea.Msg) { m.Update(msg) }, "Workload")
	sendKeys(m, "esc")
	require.Equal(t, ModeBrowse, a.Mode())

	sendKeys(m, "j")
	fc, e, ok := a.Dashboard.Selected()
	require.True(t, ok)
	require.NotNil(t, e)
	require.Equal(t, 1, fc.Index)
	require.Equal(t, "Workload Alerts", e.Widget.Title)
	require.Equal(t, 1, e.Index, "filtered slot 0 is unfiltered index 1")

	follow(t, m, sendKeys(m, "x"))

	cats := a.Store.Categories()
	assert.Equal(t, []string{"Top 5 Namespace Specific Alerts"}, titles(cats[1]))
	assert.Len(t, cats[0].Widgets, 2)
	assert.Len(t, cats[2].Widgets, 2)
	assert.Empty(t, a.Dashboard.Visible()[1].Entries, "filter still applied after removal")
}

func TestApp_ConfirmRemove(t *testing.T) {
	a, m := newTestApp(t, Options{ConfirmRemove: true})
	a.Dashboard.SetCursor(Cursor{Category: 2, Slot: 0})

	follow(t, m, sendKeys(m, "x"))
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	require.IsType(t, &ConfirmModal{}, top.View)

	follow(t, m, sendKeys(m, "n"))
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Len(t, a.Store.Categories()[2].Widgets, 2, "cancel keeps the widget")

	follow(t, m, sendKeys(m, "x"))
	require.Equal(t, 1, a.Overlays.Len())
	assert.Nil(t, sendKeys(m, "esc"))
	assert.Equal(t, 0, a.Overlays.Len(), "esc dismisses through the overlay stack")
	assert.Len(t, a.Store.Categories()[2].Widgets, 2)

	follow(t, m, sendKeys(m, "x"))
	follow(t, m, sendKeys(m, "y"))
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, []string{"Image Security Issues"}, titles(a.Store.Categories()[2]))
}

func TestApp_RemoveMissingWidgetSetsError(t *testing.T) {
	a, m := newTestApp(t, Options{})
	before := a.Store.Categories()

	m.Update(RemoveWidgetMsg{Category: 0, ID: "missing"})
	assert.True(t, a.StatusIsError)
	assert.Contains(t, m.View(), "no longer exists")
	assert.Equal(t, before, a.Store.Categories())

	m.Update(RemoveWidgetMsg{Category: 9, ID: "missing"})
	assert.True(t, a.StatusIsError)
}

func TestApp_RemoveDispatchesByID(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	st := store.New(widget.Seed(), store.WithTracer(tp.Tracer("test")))
	a := NewAppModel(context.Background(), st, Options{Title: "CSPM Dashboard", Columns: 3})
	t.Cleanup(a.Close)
	m := a.AsTeaModel()

	id := st.Categories()[1].Widgets[1].ID
	m.Update(RemoveWidgetMsg{Category: 1, ID: id})
	assert.Equal(t, []string{"Top 5 Namespace Specific Alerts"}, titles(st.Categories()[1]))
	assert.False(t, a.StatusIsError)

	m.Update(RemoveWidgetMsg{Category: 1, ID: id})
	assert.True(t, a.StatusIsError)
	assert.Contains(t, m.View(), "no longer exists")

	spans := rec.Ended()
	require.Len(t, spans, 2)
	for _, sp := range spans {
		assert.Equal(t, "store.remove_widget_by_id", sp.Name())
		assert.Contains(t, sp.Attributes(), attribute.String("widgetdash.widget.id", id))
	}
	assert.Equal(t, "Error", spans[1].Status().Code.String())
}

func TestApp_RemoveTwiceSameID(t *testing.T) {
	a, m := newTestApp(t, Options{})
	id := a.Store.Categories()[0].Widgets[0].ID

	m.Update(RemoveWidgetMsg{Category: 0, ID: id})
	m.Update(RemoveWidgetMsg{Category: 0, ID: id})

	assert.Equal(t, []string{"Cloud Account Risk"}, titles(a.Store.Categories()[0]))
	assert.True(t, a.StatusIsError)
}

func TestApp_LeaderCommands(t *testing.T) {
	a, m := newTestApp(t, Options{})

	// SPC w c opens the form scoped to the selected category.
	a.Dashboard.SetCursor(Cursor{Category: 1, Slot: 1})
	follow(t, m, sendKeys(m, " ", "w", "c"))
	require.Equal(t, 1, a.Overlays.Len())
	assert.Equal(t, 1, *a.Form.Category)
	sendKeys(m, "esc")

	// SPC w d removes the selected widget.
	follow(t, m, sendKeys(m, " ", "w", "d"))
	assert.Equal(t, []string{"Top 5 Namespace Specific Alerts"}, titles(a.Store.Categories()[1]))

	// SPC / focuses search and SPC w x clears it.
	follow(t, m, sendKeys(m, " ", "/"))
	assert.True(t, a.Dashboard.Searching())
	typeText(func(msg tea.Msg) { m.Update(msg) }, "cloud")
	sendKeys(m, "enter")
	assert.Equal(t, "cloud", a.Dashboard.Query())
	follow(t, m, sendKeys(m, " ", "w", "x"))
	assert.Equal(t, "", a.Dashboard.Query())
}

func TestApp_LeaderHelpShown(t *testing.T) {
	a, m := newTestApp(t, Options{})
	sendKeys(m, " ")
	require.True(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, m.View(), "Widget")
	sendKeys(m, "esc")
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_Quit(t *testing.T) {
	_, m := newTestApp(t, Options{})
	cmd := sendKeys(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = sendKeys(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ModalCapturesKeys(t *testing.T) {
	a, m := newTestApp(t, Options{})
	openAddForm(t, a, m)

	assert.Nil(t, sendKeys(m, "q"), "q does not quit while a modal is open")
	assert.Nil(t, sendKeys(m, "x"))
	assert.Len(t, a.Store.Categories()[0].Widgets, 2)

	_, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
}

func TestApp_ObserverRefresh(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	ctx := context.Background()

	w := widget.New(widget.KindSlider, "External")
	require.NoError(t, a.Store.Dispatch(ctx, store.AddWidgetAction{Category: 1, Widget: w}))
	assert.Equal(t, "External", a.Dashboard.Categories()[1].Widgets[2].Title)
	assert.Contains(t, a.AsTeaModel().View(), "External")

	a.Close()
	require.NoError(t, a.Store.Dispatch(ctx, store.RemoveWidgetByIDAction{Category: 1, ID: w.ID}))
	assert.Len(t, a.Dashboard.Categories()[1].Widgets, 3, "closed app no longer observes the store")
}

func TestApp_ViewWithModal(t *testing.T) {
	a, m := newTestApp(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	openAddForm(t, a, m)
	out := m.View()
	assert.Contains(t, out, "Add New Widget")
	assert.NotContains(t, out, "Registry Scan", "modal replaces the dashboard when sized")
}
