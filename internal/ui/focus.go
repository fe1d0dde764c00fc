package ui

// FocusManager tracks which field of a form has input focus and rotates it
// in tab order.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next moves focus to the following field, wrapping at the end.
// Returns the new current ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the preceding field, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.change(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.change(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) change(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
