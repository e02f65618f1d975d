package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all state updates for the demo.
//
// Keyboard and mouse input is translated onto the focused region's
// controller; everything the controllers do themselves (autoplay, resize
// debouncing) arrives back as regionChangedMsg repaints.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		// Feed the page's viewport; the controllers debounce the burst a
		// terminal resize produces.
		m.doc.SetViewport(msg.Width*cellPixels, msg.Height*cellPixels)
		return m, nil

	case regionChangedMsg:
		// State already changed inside the controller; repaint only.
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	region := m.focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		if region != nil {
			region.Controller.Next()
		}

	case key.Matches(msg, m.keys.Prev):
		if region != nil {
			region.Controller.Prev()
		}

	case key.Matches(msg, m.keys.NextRegion):
		if n := len(m.page.Regions); n > 0 {
			m.focus = (m.focus + 1) % n
		}

	case key.Matches(msg, m.keys.PrevRegion):
		if n := len(m.page.Regions); n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}

	case key.Matches(msg, m.keys.GoTo):
		if region != nil {
			if i, err := strconv.Atoi(msg.String()); err == nil {
				region.Controller.GoTo(i - 1)
			}
		}
	}

	return m, nil
}

// handleMouse emulates the touch protocol with a mouse drag: press starts a
// gesture on the focused region, motion updates it, release completes it.
// Coordinates are scaled to the same pixel space the viewport uses so the
// drag threshold behaves like it would on a touch screen.
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	region := m.focused()
	if region == nil {
		return m, nil
	}

	x := float64(msg.X * cellPixels)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			region.Controller.TouchStart(x)
		}

	case tea.MouseActionMotion:
		if m.dragging {
			region.Controller.TouchMove(x)
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			region.Controller.TouchEnd()
		}
	}

	return m, nil
}
