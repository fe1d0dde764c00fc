// Package ui is the Bubble Tea front end of the widget dashboard.
//
// Core pieces:
//   - View: a screen region with its own init, update and view (Elm-style)
//   - DashboardView: category sections of widget cards, the search box and selection
//   - OverlayStack: modals (add widget, confirm remove) drawn over the dashboard
//   - FocusManager: field focus inside a modal
//   - KeyHandler: single keys and SPC leader sequences
//
// The app never edits categories itself. It dispatches store actions and
// redraws from the snapshot the store hands its observers.
package ui
