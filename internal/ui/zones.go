package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Click targets are identified by zone IDs built from the category index and
// widget ID, so they stay correct while a filter is active.
func cardZoneID(ci int, id string) string   { return fmt.Sprintf("card:%d:%s", ci, id) }
func deleteZoneID(ci int, id string) string { return fmt.Sprintf("del:%d:%s", ci, id) }
func addZoneID(ci int) string               { return fmt.Sprintf("add:%d", ci) }

// Zones wraps a bubblezone manager. A nil *Zones disables mouse targets.
type Zones struct {
	m *zone.Manager
}

// NewZones creates a zone manager. Close it when the program exits.
func NewZones() *Zones {
	return &Zones{m: zone.New()}
}

// Mark tags s as the click target id.
func (z *Zones) Mark(id, s string) string {
	if z == nil || z.m == nil {
		return s
	}
	return z.m.Mark(id, s)
}

// Scan strips zone markers from the final frame and records positions.
func (z *Zones) Scan(s string) string {
	if z == nil || z.m == nil {
		return s
	}
	return z.m.Scan(s)
}

// Hit reports whether msg falls inside the zone id.
func (z *Zones) Hit(id string, msg tea.MouseMsg) bool {
	if z == nil || z.m == nil {
		return false
	}
	info := z.m.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

// Close stops the manager's worker.
func (z *Zones) Close() {
	if z == nil || z.m == nil {
		return
	}
	z.m.Close()
}
