package main

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidekit/slidekit/pkg/dom"
	"github.com/slidekit/slidekit/pkg/page"
)

// cellPixels approximates one terminal cell as device-independent pixels,
// so the manifest's web-style breakpoints (768, 992) stay meaningful when
// the viewport is measured in columns.
const cellPixels = 8

// model is the state of the demo application.
type model struct {
	doc  *dom.Document
	page *page.Page

	// Focused region; keyboard navigation targets it.
	focus int

	// Mouse drag tracking, forwarded to the focused region as touch events.
	dragging bool

	// Window dimensions
	width  int
	height int
	ready  bool

	keys keyMap
	help help.Model
}

// regionChangedMsg is sent whenever a controller repositions, including
// from its autoplay goroutine; receiving it repaints the view.
type regionChangedMsg struct {
	id string
}

func newModel(doc *dom.Document, p *page.Page) *model {
	return &model{
		doc:  doc,
		page: p,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// focused returns the region keyboard input targets, or nil before any
// region exists.
func (m *model) focused() *page.Region {
	if len(m.page.Regions) == 0 {
		return nil
	}
	return m.page.Regions[m.focus]
}
