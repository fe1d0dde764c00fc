package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"widgetdash/internal/store"
)

// Options configures the application model.
type Options struct {
	Title         string
	Columns       int
	ConfirmRemove bool
	Zones         *Zones // nil disables mouse targets
}

// AppModel is the root model: the dashboard, the overlay stack for modals,
// and the add-widget form state. All state changes go through Store.
type AppModel struct {
	Store         *store.Store
	Dashboard     *DashboardView
	Overlays      OverlayStack
	KeyHandler    *KeyHandler
	Form          AddWidgetForm
	ConfirmRemove bool

	// Status is a one-line message shown under the dashboard (e.g. errors).
	Status        string
	StatusIsError bool

	zones       *Zones
	ctx         context.Context
	unsubscribe func()
	width       int
	height      int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model over st and subscribes the dashboard
// to it.
func NewAppModel(ctx context.Context, st *store.Store, opts Options) *AppModel {
	a := &AppModel{
		Store:         st,
		Dashboard:     NewDashboardView(opts.Title, opts.Columns, st.Categories(), opts.Zones),
		KeyHandler:    NewKeyHandler(newKeybindRegistry()),
		Form:          NewAddWidgetForm(),
		ConfirmRemove: opts.ConfirmRemove,
		zones:         opts.Zones,
		ctx:           ctx,
	}
	a.unsubscribe = st.Subscribe(a.Dashboard.SetCategories)
	return a
}

func newKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC /", func() tea.Msg { return FocusSearchMsg{} }, "Search")
	reg.BindWithDesc("SPC w a", func() tea.Msg { return ShowAddWidgetMsg{} }, "Add widget")
	reg.BindWithDesc("SPC w c", func() tea.Msg { return AddSelectedMsg{} }, "Add to this category")
	reg.BindWithDesc("SPC w d", func() tea.Msg { return RemoveSelectedMsg{} }, "Remove widget")
	reg.BindWithDesc("SPC w x", func() tea.Msg { return ClearSearchMsg{} }, "Clear search")
	return reg
}

// Close detaches the dashboard from the store.
func (m *AppModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Mode reports where key input currently goes.
func (m *AppModel) Mode() AppMode {
	switch {
	case m.Overlays.Len() > 0:
		return ModeModal
	case m.Dashboard.Searching():
		return ModeSearch
	default:
		return ModeBrowse
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Dashboard.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Dashboard.Update(msg)
		return a, cmd
	case ShowAddWidgetMsg:
		return a.handleShowAddWidget(msg)
	case AddSelectedMsg:
		if fc, _, ok := a.Dashboard.Selected(); ok {
			return a.handleShowAddWidget(ShowAddWidgetMsg{Category: fc.Index, Preselect: true})
		}
		return a, nil
	case SubmitAddWidgetMsg:
		return a.handleSubmitAddWidget()
	case RequestRemoveWidgetMsg:
		return a.handleRequestRemoveWidget(msg)
	case RemoveSelectedMsg:
		if fc, e, ok := a.Dashboard.Selected(); ok && e != nil {
			return a.handleRequestRemoveWidget(RequestRemoveWidgetMsg{Category: fc.Index, ID: e.Widget.ID, Title: e.Widget.Title})
		}
		return a, nil
	case RemoveWidgetMsg:
		return a.handleRemoveWidget(msg)
	case FocusSearchMsg:
		return a, a.Dashboard.StartSearch()
	case ClearSearchMsg:
		a.Dashboard.SetQuery("")
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.Dashboard.Searching() {
			_, cmd := a.Dashboard.Update(msg)
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	default:
		// Cursor blink and other ticks go to whichever input may be showing.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			_, dcmd := a.Dashboard.Update(msg)
			return a, tea.Batch(cmd, dcmd)
		}
	}

	_, cmd := a.Dashboard.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Dashboard.View()
	if a.Status != "" {
		style := Styles.Hint
		if a.StatusIsError {
			style = Styles.Error
		}
		base += "\n" + style.Render(a.Status)
	}
	if a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		} else {
			base += "\n" + modal
		}
	}
	return a.zones.Scan(base)
}
