package ui

// AppMode describes which part of the UI currently receives key input.
type AppMode int

const (
	// ModeBrowse moves the card selection and accepts leader commands.
	ModeBrowse AppMode = iota
	// ModeSearch sends keystrokes to the search box.
	ModeSearch
	// ModeModal sends keystrokes to the topmost overlay.
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeSearch:
		return "Search"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
