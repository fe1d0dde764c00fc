package ui

// ShowAddWidgetMsg opens the add-widget form.
// With Preselect the form's category is set to Category (per-category add
// card); without it the form keeps whatever category it already holds
// (global Add Widget button).
type ShowAddWidgetMsg struct {
	Category  int
	Preselect bool
}

// SubmitAddWidgetMsg is sent by the form on Enter. The app validates and
// dispatches using its own form state.
type SubmitAddWidgetMsg struct{}

// RequestRemoveWidgetMsg is sent when the user activates a card's delete
// control. It goes through confirmation when that is enabled.
type RequestRemoveWidgetMsg struct {
	Category int
	ID       string
	Title    string
}

// RemoveWidgetMsg removes a widget identified by category and stable ID.
type RemoveWidgetMsg struct {
	Category int
	ID       string
}

// RemoveSelectedMsg removes the widget under the dashboard cursor (SPC w d).
type RemoveSelectedMsg struct{}

// AddSelectedMsg opens the form scoped to the category under the cursor (SPC w c).
type AddSelectedMsg struct{}

// FocusSearchMsg moves input focus to the search box (SPC /).
type FocusSearchMsg struct{}

// ClearSearchMsg empties the search query (SPC w x).
type ClearSearchMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
