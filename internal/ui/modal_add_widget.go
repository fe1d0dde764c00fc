package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"widgetdash/internal/widget"
)

// AddWidgetForm is the add-widget form state. It lives on the app so that
// cancelling the modal keeps what the user entered.
type AddWidgetForm struct {
	Category *int // nil until a category is chosen
	Title    string
	Kind     widget.Kind
}

// NewAddWidgetForm returns an empty form (no category, donut).
func NewAddWidgetForm() AddWidgetForm {
	return AddWidgetForm{Kind: widget.KindDonut}
}

// Reset clears the form after a successful submit.
func (f *AddWidgetForm) Reset() {
	*f = NewAddWidgetForm()
}

// SetCategory selects category ci.
func (f *AddWidgetForm) SetCategory(ci int) {
	f.Category = &ci
}

// Form field IDs, in tab order.
const (
	fieldCategory = "category"
	fieldTitle    = "title"
	fieldKind     = "kind"
)

// AddWidgetModal edits an AddWidgetForm in place.
// Tab/Shift+Tab move between fields, ←/→ cycle the selects, Enter submits.
// Esc is the overlay's dismiss key and never reaches the modal.
type AddWidgetModal struct {
	form       *AddWidgetForm
	categories []string
	title      textinput.Model
	focus      *FocusManager
}

// Ensure AddWidgetModal implements View.
var _ View = (*AddWidgetModal)(nil)

// NewAddWidgetModal creates a modal over form offering the given category names.
func NewAddWidgetModal(form *AddWidgetForm, categories []string) *AddWidgetModal {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Widget title"
	ti.Width = 32
	ti.SetValue(form.Title)

	m := &AddWidgetModal{
		form:       form,
		categories: categories,
		title:      ti,
	}
	m.focus = &FocusManager{
		Order: []string{fieldCategory, fieldTitle, fieldKind},
		OnChange: func(_, to string) {
			if to == fieldTitle {
				m.title.Focus()
			} else {
				m.title.Blur()
			}
		},
	}
	// A preselected category means the user came from a category's add
	// card; start on the title.
	if form.Category != nil {
		m.focus.SetFocus(fieldTitle)
	} else {
		m.focus.SetFocus(fieldCategory)
	}
	return m
}

// Focused returns the ID of the focused field.
func (m *AddWidgetModal) Focused() string {
	return m.focus.Current
}

// Init implements View.
func (m *AddWidgetModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddWidgetModal) Update(msg tea.Msg) (View, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "enter":
		return m, func() tea.Msg { return SubmitAddWidgetMsg{} }
	case "tab", "down":
		m.focus.Next()
		return m, nil
	case "shift+tab", "up":
		m.focus.Prev()
		return m, nil
	}

	switch m.focus.Current {
	case fieldCategory:
		m.cycleCategory(key.String())
	case fieldKind:
		m.cycleKind(key.String())
	case fieldTitle:
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		m.form.Title = m.title.Value()
		return m, cmd
	}
	return m, nil
}

func (m *AddWidgetModal) cycleCategory(k string) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	switch k {
	case "right", "l", " ":
		if m.form.Category == nil {
			m.form.SetCategory(0)
		} else {
			m.form.SetCategory((*m.form.Category + 1) % n)
		}
	case "left", "h":
		if m.form.Category == nil {
			m.form.SetCategory(n - 1)
		} else {
			m.form.SetCategory((*m.form.Category - 1 + n) % n)
		}
	}
}

func (m *AddWidgetModal) cycleKind(k string) {
	idx := 0
	for i, kind := range widget.Kinds {
		if kind == m.form.Kind {
			idx = i
		}
	}
	n := len(widget.Kinds)
	switch k {
	case "right", "l", " ":
		m.form.Kind = widget.Kinds[(idx+1)%n]
	case "left", "h":
		m.form.Kind = widget.Kinds[(idx-1+n)%n]
	}
}

// View implements View.
func (m *AddWidgetModal) View() string {
	category := "Select category"
	if c := m.form.Category; c != nil && *c >= 0 && *c < len(m.categories) {
		category = m.categories[*c]
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Add New Widget") + "\n\n")
	b.WriteString(m.field(fieldCategory, "Select Category", selectValue(category, m.form.Category == nil)) + "\n")
	b.WriteString(m.field(fieldTitle, "Widget Title", m.title.View()) + "\n")
	b.WriteString(m.field(fieldKind, "Widget Type", selectValue(m.form.Kind.Label(), false)) + "\n\n")
	b.WriteString(Styles.AddCard.Render("[ Add Widget ]") + "\n\n")
	b.WriteString(Styles.Hint.Render("Tab: next field  ←/→: change  Enter: add  Esc: cancel"))
	return Styles.Box.Render(b.String())
}

func (m *AddWidgetModal) field(id, label, value string) string {
	ls := Styles.Field
	marker := "  "
	if m.focus.Is(id) {
		ls = Styles.FieldOn
		marker = "▸ "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, ls.Render(marker+label+": "), value)
}

func selectValue(v string, empty bool) string {
	if empty {
		return Styles.Muted.Render("‹ " + v + " ›")
	}
	return "‹ " + v + " ›"
}
