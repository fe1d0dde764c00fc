package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"widgetdash/internal/widget"
)

const (
	defaultWidth   = 100
	headerHeight   = 3
	globalAddZone  = "add:global"
	searchZone     = "search"
	searchHintText = "Search widgets..."
)

// Cursor addresses a card in the filtered view. Slot == len(entries) is the
// category's trailing add card.
type Cursor struct {
	Category int
	Slot     int
}

// DashboardView renders categories as sections of widget cards and owns the
// search box and card selection.
type DashboardView struct {
	Title   string
	Columns int

	categories []widget.Category
	visible    []FilteredCategory
	cursor     Cursor

	search    textinput.Model
	searching bool

	viewport viewport.Model
	follow   bool // scroll the selected card into view on next render
	width    int
	height   int

	zones *Zones
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard showing cats.
func NewDashboardView(title string, columns int, cats []widget.Category, z *Zones) *DashboardView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = searchHintText
	ti.Width = 24

	d := &DashboardView{
		Title:    title,
		Columns:  max(columns, 1),
		search:   ti,
		viewport: viewport.New(0, 0),
		zones:    z,
	}
	d.SetCategories(cats)
	return d
}

// SetCategories replaces the displayed state and re-applies the filter.
// The store observer calls this after every committed mutation.
func (d *DashboardView) SetCategories(cats []widget.Category) {
	d.categories = cats
	d.refilter()
}

// Categories returns the unfiltered state the dashboard is showing.
func (d *DashboardView) Categories() []widget.Category {
	return d.categories
}

// Visible returns the filtered view.
func (d *DashboardView) Visible() []FilteredCategory {
	return d.visible
}

// Query returns the current search string.
func (d *DashboardView) Query() string {
	return d.search.Value()
}

// SetQuery replaces the search string and refilters.
func (d *DashboardView) SetQuery(q string) {
	d.search.SetValue(q)
	d.refilter()
}

// Searching reports whether the search box has input focus.
func (d *DashboardView) Searching() bool {
	return d.searching
}

// StartSearch gives the search box input focus.
func (d *DashboardView) StartSearch() tea.Cmd {
	d.searching = true
	return d.search.Focus()
}

// StopSearch returns input to card navigation, keeping the query.
func (d *DashboardView) StopSearch() {
	d.searching = false
	d.search.Blur()
}

// Cursor returns the current selection.
func (d *DashboardView) Cursor() Cursor {
	return d.cursor
}

// SetCursor moves the selection, clamped to the filtered view.
func (d *DashboardView) SetCursor(c Cursor) {
	d.cursor = c
	d.clampCursor()
	d.follow = true
}

// Selected returns the category under the cursor and the entry, or nil
// when the cursor is on the add card. ok is false with no categories.
func (d *DashboardView) Selected() (fc FilteredCategory, e *Entry, ok bool) {
	if len(d.visible) == 0 {
		return FilteredCategory{}, nil, false
	}
	fc = d.visible[d.cursor.Category]
	if d.cursor.Slot < len(fc.Entries) {
		entry := fc.Entries[d.cursor.Slot]
		return fc, &entry, true
	}
	return fc, nil, true
}

func (d *DashboardView) refilter() {
	d.visible = Filter(d.categories, d.search.Value())
	d.clampCursor()
}

func (d *DashboardView) clampCursor() {
	if len(d.visible) == 0 {
		d.cursor = Cursor{}
		return
	}
	d.cursor.Category = min(max(d.cursor.Category, 0), len(d.visible)-1)
	d.cursor.Slot = min(max(d.cursor.Slot, 0), d.slots(d.cursor.Category)-1)
}

// slots is the number of cards in category ci including the add card.
func (d *DashboardView) slots(ci int) int {
	return len(d.visible[ci].Entries) + 1
}

func (d *DashboardView) cols() int {
	cols := max(d.Columns, 1)
	for cols > 1 && d.cardWidthFor(cols) < minCardWidth {
		cols--
	}
	return cols
}

func (d *DashboardView) cardWidthFor(cols int) int {
	w := d.width
	if w <= 0 {
		w = defaultWidth
	}
	return (w - cardGap*(cols-1)) / cols
}

func (d *DashboardView) cardWidth() int {
	return max(d.cardWidthFor(d.cols()), minCardWidth)
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.viewport.Width = msg.Width
		d.viewport.Height = max(msg.Height-headerHeight-1, 1)
		d.follow = true
		return d, nil
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	case tea.KeyMsg:
		if d.searching {
			return d, d.handleSearchKey(msg)
		}
		return d, d.handleKey(msg)
	}
	if d.searching {
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DashboardView) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "tab":
		d.StopSearch()
		return nil
	}
	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.refilter()
	d.follow = true
	return cmd
}

func (d *DashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "right", "l":
		d.moveRight()
	case "left", "h":
		d.moveLeft()
	case "down", "j":
		d.moveDown()
	case "up", "k":
		d.moveUp()
	case "g", "home":
		d.SetCursor(Cursor{})
	case "G", "end":
		if n := len(d.visible); n > 0 {
			d.SetCursor(Cursor{Category: n - 1, Slot: d.slots(n-1) - 1})
		}
	case "/":
		return d.StartSearch()
	case "a":
		return func() tea.Msg { return ShowAddWidgetMsg{} }
	case "enter":
		fc, e, ok := d.Selected()
		if !ok {
			return nil
		}
		if e == nil {
			return showAddFor(fc.Index)
		}
	case "x", "d", "delete":
		fc, e, ok := d.Selected()
		if ok && e != nil {
			return requestRemove(fc.Index, *e)
		}
	}
	return nil
}

func showAddFor(ci int) tea.Cmd {
	return func() tea.Msg { return ShowAddWidgetMsg{Category: ci, Preselect: true} }
}

func requestRemove(ci int, e Entry) tea.Cmd {
	return func() tea.Msg {
		return RequestRemoveWidgetMsg{Category: ci, ID: e.Widget.ID, Title: e.Widget.Title}
	}
}

func (d *DashboardView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			d.viewport, cmd = d.viewport.Update(msg)
			return cmd
		}
		return nil
	}
	if d.zones.Hit(globalAddZone, msg) {
		return func() tea.Msg { return ShowAddWidgetMsg{} }
	}
	if d.zones.Hit(searchZone, msg) {
		return d.StartSearch()
	}
	for _, fc := range d.visible {
		for slot, e := range fc.Entries {
			if d.zones.Hit(deleteZoneID(fc.Index, e.Widget.ID), msg) {
				return requestRemove(fc.Index, e)
			}
			if d.zones.Hit(cardZoneID(fc.Index, e.Widget.ID), msg) {
				d.SetCursor(Cursor{Category: fc.Index, Slot: slot})
				return nil
			}
		}
		if d.zones.Hit(addZoneID(fc.Index), msg) {
			d.SetCursor(Cursor{Category: fc.Index, Slot: len(fc.Entries)})
			return showAddFor(fc.Index)
		}
	}
	return nil
}

func (d *DashboardView) moveRight() {
	if len(d.visible) == 0 {
		return
	}
	c := d.cursor
	if c.Slot+1 < d.slots(c.Category) {
		c.Slot++
	} else if c.Category+1 < len(d.visible) {
		c = Cursor{Category: c.Category + 1}
	}
	d.SetCursor(c)
}

func (d *DashboardView) moveLeft() {
	if len(d.visible) == 0 {
		return
	}
	c := d.cursor
	if c.Slot > 0 {
		c.Slot--
	} else if c.Category > 0 {
		c = Cursor{Category: c.Category - 1, Slot: d.slots(c.Category-1) - 1}
	}
	d.SetCursor(c)
}

func (d *DashboardView) moveDown() {
	if len(d.visible) == 0 {
		return
	}
	cols := d.cols()
	c := d.cursor
	n := d.slots(c.Category)
	switch {
	case c.Slot+cols < n:
		c.Slot += cols
	case c.Slot/cols < (n-1)/cols:
		c.Slot = n - 1
	case c.Category+1 < len(d.visible):
		col := c.Slot % cols
		c = Cursor{Category: c.Category + 1, Slot: min(col, d.slots(c.Category+1)-1)}
	}
	d.SetCursor(c)
}

func (d *DashboardView) moveUp() {
	if len(d.visible) == 0 {
		return
	}
	cols := d.cols()
	c := d.cursor
	switch {
	case c.Slot-cols >= 0:
		c.Slot -= cols
	case c.Category > 0:
		col := c.Slot % cols
		n := d.slots(c.Category - 1)
		lastRow := (n - 1) / cols * cols
		c = Cursor{Category: c.Category - 1, Slot: min(lastRow+col, n-1)}
	}
	d.SetCursor(c)
}

// View implements View.
func (d *DashboardView) View() string {
	body, selTop := d.renderBody()
	header := d.renderHeader()
	if d.height <= 0 {
		return header + "\n" + body
	}

	d.viewport.SetContent(body)
	if d.follow {
		d.scrollTo(selTop)
		d.follow = false
	}
	return header + "\n" + d.viewport.View()
}

// scrollTo adjusts the viewport so a card starting at line top is visible.
func (d *DashboardView) scrollTo(top int) {
	h := d.viewport.Height
	switch {
	case top < d.viewport.YOffset:
		d.viewport.SetYOffset(max(top-1, 0))
	case top+cardHeight > d.viewport.YOffset+h:
		d.viewport.SetYOffset(top + cardHeight - h)
	}
}

func (d *DashboardView) renderHeader() string {
	title := Styles.Title.Render(d.Title)
	add := d.zones.Mark(globalAddZone, Styles.AddCard.Render("[a] "+addCardLabel))
	search := d.zones.Mark(searchZone, d.search.View())
	top := lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", add, "   ", search)

	hint := "←↓↑→ move  enter add  x delete  / search  SPC commands  q quit"
	if d.searching {
		hint = "type to filter  enter/esc done"
	}
	return top + "\n" + Styles.Hint.Render(hint)
}

// renderBody draws every category section and returns the line on which the
// selected card starts.
func (d *DashboardView) renderBody() (string, int) {
	cols := d.cols()
	w := d.cardWidth()

	var b strings.Builder
	line, selTop := 0, 0
	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		line += lipgloss.Height(s)
	}

	for _, fc := range d.visible {
		write(Styles.Section.Render(fc.Name))

		cards := make([]string, 0, len(fc.Entries)+1)
		for slot, e := range fc.Entries {
			cards = append(cards, renderWidgetCard(fc.Index, e, w, d.isSelected(fc.Index, slot), d.zones))
		}
		cards = append(cards, renderAddCard(fc.Index, w, d.isSelected(fc.Index, len(fc.Entries)), d.zones))

		for start := 0; start < len(cards); start += cols {
			end := min(start+cols, len(cards))
			if d.cursor.Category == fc.Index && d.cursor.Slot >= start && d.cursor.Slot < end {
				selTop = line
			}
			write(joinRow(cards[start:end]))
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), selTop
}

func (d *DashboardView) isSelected(ci, slot int) bool {
	return !d.searching && d.cursor.Category == ci && d.cursor.Slot == slot
}

func joinRow(cards []string) string {
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", cardGap))
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
