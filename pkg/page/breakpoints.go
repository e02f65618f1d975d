package page

import (
	"fmt"

	"github.com/slidekit/slidekit/pkg/dom"
)

// Breakpoint maps a minimum viewport width to a visible slide count.
type Breakpoint struct {
	MinWidth int `yaml:"min_width"`
	Visible  int `yaml:"visible"`
}

func validateBreakpoints(table []Breakpoint) error {
	last := -1
	for i, bp := range table {
		if bp.Visible < 1 {
			return fmt.Errorf("entry %d: visible must be at least 1, got %d", i, bp.Visible)
		}
		if bp.MinWidth < 0 {
			return fmt.Errorf("entry %d: min_width must not be negative, got %d", i, bp.MinWidth)
		}
		if bp.MinWidth <= last {
			return fmt.Errorf("entry %d: min_width %d not strictly ascending", i, bp.MinWidth)
		}
		last = bp.MinWidth
	}
	return nil
}

// VisibleCountFunc turns a breakpoint table into the visible-count oracle a
// controller consumes. The table is captured once but the viewport is read
// on every call, so the answer tracks live resizes. An empty table means a
// constant one.
func VisibleCountFunc(doc *dom.Document, table []Breakpoint) func() int {
	// Copy so later manifest mutation cannot skew an existing controller.
	bps := append([]Breakpoint{}, table...)

	return func() int {
		width, _ := doc.Viewport()
		visible := 1
		for _, bp := range bps {
			if width >= bp.MinWidth {
				visible = bp.Visible
			}
		}
		return visible
	}
}
