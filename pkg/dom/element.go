package dom

import "sync"

// Element is one node in the document tree.
type Element struct {
	tag string

	mu        sync.RWMutex
	id        string
	classes   map[string]struct{}
	attrs     map[string]string
	styles    map[string]string
	children  []*Element
	listeners []*registration
}

// Tag returns the element's tag name as given to CreateElement.
func (e *Element) Tag() string { return e.tag }

// ID returns the element's id, or "" if none was assigned.
func (e *Element) ID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.id
}

// AppendChild adds a child at the end of the element's child list.
func (e *Element) AppendChild(child *Element) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children = append(e.children, child)
}

// Children returns a snapshot of the element's children.
func (e *Element) Children() []*Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]*Element{}, e.children...)
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.children)
}

// AddClass adds a class to the element's class set.
func (e *Element) AddClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[name] = struct{}{}
}

// RemoveClass removes a class. Removing an absent class is a no-op.
func (e *Element) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, name)
}

// HasClass reports whether the class is present.
func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.classes[name]
	return ok
}

// SetAttribute sets an attribute value, replacing any previous value.
func (e *Element) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

// Attribute returns an attribute value and whether it was set.
func (e *Element) Attribute(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.attrs[name]
	return v, ok
}

// SetStyle sets an inline style property, replacing any previous value.
func (e *Element) SetStyle(property, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.styles[property] = value
}

// Style returns an inline style property value, or "" if unset.
func (e *Element) Style(property string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.styles[property]
}

// AddEventListener subscribes fn to the named event and returns a handle
// for removal. Subscribing a nil element (the "not found" result of a
// lookup) is a no-op that returns a zero handle.
func (e *Element) AddEventListener(event string, fn Listener, opts ...ListenerOptions) ListenerHandle {
	if e == nil || fn == nil {
		return ListenerHandle{}
	}

	reg := &registration{event: event, fn: fn}
	if len(opts) > 0 {
		reg.options = opts[0]
	}

	e.mu.Lock()
	e.listeners = append(e.listeners, reg)
	e.mu.Unlock()

	return ListenerHandle{el: e, reg: reg}
}

// Dispatch delivers the event to every listener registered for its type, in
// registration order. The event's Target is set to the element if unset.
// Dispatching on a nil element is a no-op.
func (e *Element) Dispatch(ev Event) {
	if e == nil {
		return
	}
	if ev.Target == nil {
		ev.Target = e
	}

	e.mu.RLock()
	regs := append([]*registration{}, e.listeners...)
	e.mu.RUnlock()

	for _, reg := range regs {
		if reg.removed || reg.event != ev.Type {
			continue
		}
		reg.fn(ev)
	}
}

func (e *Element) removeListener(target *registration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	target.removed = true
	for i, reg := range e.listeners {
		if reg == target {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}
