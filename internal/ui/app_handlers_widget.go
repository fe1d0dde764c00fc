package ui

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/store"
	"widgetdash/internal/widget"
)

// handleShowAddWidget opens the add-widget form, pre-selecting the category
// when the request came from a category's add card.
func (a *appModelAdapter) handleShowAddWidget(msg ShowAddWidgetMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		return a, nil
	}
	if msg.Preselect {
		a.Form.SetCategory(msg.Category)
	}
	modal := NewAddWidgetModal(&a.Form, a.categoryNames())
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleSubmitAddWidget adds the widget described by the form. Without a
// chosen category this does nothing and the form stays open.
func (a *appModelAdapter) handleSubmitAddWidget() (tea.Model, tea.Cmd) {
	if a.Form.Category == nil {
		return a, nil
	}
	ci := *a.Form.Category
	w := widget.New(a.Form.Kind, a.Form.Title)
	if err := a.Store.Dispatch(a.ctx, store.AddWidgetAction{Category: ci, Widget: w}); err != nil {
		log.Printf("ui: add widget to category %d: %v", ci, err)
		a.setError(fmt.Sprintf("Add widget: %v", err))
		return a, nil
	}
	log.Printf("ui: added %s widget %q (%s) to category %d", w.Kind(), w.Title, w.ID, ci)
	a.Form.Reset()
	a.Overlays.Pop()
	a.clearStatus()
	return a, nil
}

// handleRequestRemoveWidget removes a widget, asking first when
// confirmation is enabled.
func (a *appModelAdapter) handleRequestRemoveWidget(msg RequestRemoveWidgetMsg) (tea.Model, tea.Cmd) {
	if !a.ConfirmRemove {
		return a.handleRemoveWidget(RemoveWidgetMsg{Category: msg.Category, ID: msg.ID})
	}
	name := ""
	if cats := a.Dashboard.Categories(); msg.Category >= 0 && msg.Category < len(cats) {
		name = cats[msg.Category].Name
	}
	a.Overlays.Push(Overlay{View: NewRemoveWidgetConfirmModal(name, msg), Dismiss: "esc"})
	return a, nil
}

// handleRemoveWidget removes the widget by its stable ID. The store resolves
// the unfiltered position under the same lock as the removal.
func (a *appModelAdapter) handleRemoveWidget(msg RemoveWidgetMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if _, isConfirm := top.View.(*ConfirmModal); isConfirm {
			a.Overlays.Pop()
		}
	}
	err := a.Store.Dispatch(a.ctx, store.RemoveWidgetByIDAction{Category: msg.Category, ID: msg.ID})
	switch {
	case errors.Is(err, store.ErrWidgetNotFound):
		log.Printf("ui: remove widget %s from category %d: %v", msg.ID, msg.Category, err)
		a.setError("Remove widget: widget no longer exists")
		return a, nil
	case err != nil:
		log.Printf("ui: remove widget %s from category %d: %v", msg.ID, msg.Category, err)
		a.setError(fmt.Sprintf("Remove widget: %v", err))
		return a, nil
	}
	log.Printf("ui: removed widget %s from category %d", msg.ID, msg.Category)
	a.clearStatus()
	return a, nil
}

func (a *AppModel) categoryNames() []string {
	cats := a.Dashboard.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

func (a *AppModel) setError(s string) {
	a.Status = s
	a.StatusIsError = true
}

func (a *AppModel) clearStatus() {
	a.Status = ""
	a.StatusIsError = false
}
