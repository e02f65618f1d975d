package dom

import "sync"

// Document owns a tree of elements, the id registry used for lookup, and
// the viewport geometry responsive policies read from.
type Document struct {
	root *Element

	mu       sync.RWMutex
	byID     map[string]*Element
	width    int
	height   int
	handlers []*registration
}

// NewDocument creates an empty document with the given viewport size.
func NewDocument(width, height int) *Document {
	d := &Document{
		byID:   make(map[string]*Element),
		width:  width,
		height: height,
	}
	d.root = d.CreateElement("body")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a detached element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		tag:     tag,
		classes: make(map[string]struct{}),
		attrs:   make(map[string]string),
		styles:  make(map[string]string),
	}
}

// SetElementID assigns an id to the element and registers it for lookup.
// A later assignment of the same id replaces the earlier registration.
func (d *Document) SetElementID(el *Element, id string) {
	el.mu.Lock()
	el.id = id
	el.mu.Unlock()

	d.mu.Lock()
	d.byID[id] = el
	d.mu.Unlock()
}

// GetElementByID returns the element registered under id, or nil if no such
// element exists. Callers must treat nil as "not found", not an error.
func (d *Document) GetElementByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byID[id]
}

// Viewport returns the current viewport width and height.
func (d *Document) Viewport() (width, height int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.width, d.height
}

// SetViewport updates the viewport size and dispatches a resize event to
// document-level listeners.
func (d *Document) SetViewport(width, height int) {
	d.mu.Lock()
	d.width = width
	d.height = height
	regs := append([]*registration{}, d.handlers...)
	d.mu.Unlock()

	for _, reg := range regs {
		if reg.removed || reg.event != EventResize {
			continue
		}
		reg.fn(Event{Type: EventResize, X: float64(width), Y: float64(height)})
	}
}

// AddEventListener subscribes to document-level events. Only resize is
// dispatched by the document itself.
func (d *Document) AddEventListener(event string, fn Listener) ListenerHandle {
	if fn == nil {
		return ListenerHandle{}
	}

	reg := &registration{event: event, fn: fn}

	d.mu.Lock()
	d.handlers = append(d.handlers, reg)
	d.mu.Unlock()

	return ListenerHandle{el: d.root, reg: reg, doc: d}
}

func (d *Document) removeListener(target *registration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	target.removed = true
	for i, reg := range d.handlers {
		if reg == target {
			d.handlers = append(d.handlers[:i], d.handlers[i+1:]...)
			return
		}
	}
}
