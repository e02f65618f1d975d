package dom

// Event names understood by the document tree. Hosts may dispatch any name;
// these constants cover the interaction surface the carousel subscribes to.
const (
	EventClick        = "click"
	EventPointerEnter = "pointerenter"
	EventPointerLeave = "pointerleave"
	EventTouchStart   = "touchstart"
	EventTouchMove    = "touchmove"
	EventTouchEnd     = "touchend"
	EventResize       = "resize"
)

// Event is delivered to listeners on dispatch. X and Y carry pointer or
// touch coordinates in device-independent pixels; they are zero for events
// that have no position (click on a button, resize).
type Event struct {
	Type   string
	X      float64
	Y      float64
	Target *Element
}

// Listener receives dispatched events.
type Listener func(Event)

// ListenerOptions mirrors the host-page listener flags the carousel relies
// on. Passive listeners promise not to cancel the event; the in-memory tree
// records the flag so hosts can assert on it but never blocks either way.
type ListenerOptions struct {
	Passive bool
}

// registration is one subscribed listener on an element.
type registration struct {
	event   string
	fn      Listener
	options ListenerOptions
	removed bool
}

// ListenerHandle identifies a subscription so it can be removed later.
type ListenerHandle struct {
	el  *Element
	doc *Document
	reg *registration
}

// Remove unsubscribes the listener. Safe to call more than once and on the
// zero value.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.doc != nil {
		h.doc.removeListener(h.reg)
		return
	}
	if h.el != nil {
		h.el.removeListener(h.reg)
	}
}
