package dom

import "testing"

func TestGetElementByID(t *testing.T) {
	doc := NewDocument(1280, 800)

	el := doc.CreateElement("div")
	doc.SetElementID(el, "hero-track")

	t.Run("returns registered element", func(t *testing.T) {
		if got := doc.GetElementByID("hero-track"); got != el {
			t.Fatalf("GetElementByID returned %v, want the registered element", got)
		}
	})

	t.Run("returns nil for unknown id", func(t *testing.T) {
		if got := doc.GetElementByID("missing"); got != nil {
			t.Fatalf("GetElementByID for unknown id returned %v, want nil", got)
		}
	})
}

func TestElementClassesAndAttributes(t *testing.T) {
	doc := NewDocument(1280, 800)
	el := doc.CreateElement("span")

	el.AddClass("indicator")
	if !el.HasClass("indicator") {
		t.Error("expected class to be present after AddClass")
	}

	el.RemoveClass("indicator")
	if el.HasClass("indicator") {
		t.Error("expected class to be absent after RemoveClass")
	}

	// Removing again must not panic or change anything
	el.RemoveClass("indicator")

	el.SetAttribute("aria-live", "polite")
	if v, ok := el.Attribute("aria-live"); !ok || v != "polite" {
		t.Errorf("Attribute = %q, %v; want polite, true", v, ok)
	}

	el.SetStyle("transform", "translateX(-100%)")
	if got := el.Style("transform"); got != "translateX(-100%)" {
		t.Errorf("Style = %q, want translateX(-100%%)", got)
	}
}

func TestDispatchOrderAndRemoval(t *testing.T) {
	doc := NewDocument(1280, 800)
	el := doc.CreateElement("div")

	var calls []int
	el.AddEventListener(EventClick, func(Event) { calls = append(calls, 1) })
	h := el.AddEventListener(EventClick, func(Event) { calls = append(calls, 2) })
	el.AddEventListener(EventTouchStart, func(Event) { calls = append(calls, 3) })

	el.Dispatch(Event{Type: EventClick})
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("dispatch order = %v, want [1 2]", calls)
	}

	h.Remove()
	h.Remove() // double remove is safe

	calls = nil
	el.Dispatch(Event{Type: EventClick})
	if len(calls) != 1 || calls[0] != 1 {
		t.Fatalf("after removal calls = %v, want [1]", calls)
	}
}

func TestDispatchOnNilElement(t *testing.T) {
	var el *Element
	// Both must be safe no-ops for "element not found" callers.
	el.Dispatch(Event{Type: EventClick})
	h := el.AddEventListener(EventClick, func(Event) { t.Error("listener on nil element must never fire") })
	h.Remove()
}

func TestDispatchSetsTarget(t *testing.T) {
	doc := NewDocument(1280, 800)
	el := doc.CreateElement("div")

	var got *Element
	el.AddEventListener(EventClick, func(ev Event) { got = ev.Target })
	el.Dispatch(Event{Type: EventClick})

	if got != el {
		t.Errorf("Target = %v, want the dispatching element", got)
	}
}

func TestViewportResizeDispatch(t *testing.T) {
	doc := NewDocument(1280, 800)

	var widths []float64
	handle := doc.AddEventListener(EventResize, func(ev Event) { widths = append(widths, ev.X) })

	doc.SetViewport(640, 800)
	doc.SetViewport(375, 667)

	if w, _ := doc.Viewport(); w != 375 {
		t.Errorf("Viewport width = %d, want 375", w)
	}
	if len(widths) != 2 || widths[0] != 640 || widths[1] != 375 {
		t.Fatalf("resize widths = %v, want [640 375]", widths)
	}

	handle.Remove()
	doc.SetViewport(1280, 800)
	if len(widths) != 2 {
		t.Error("removed resize listener still fired")
	}
}

func TestChildren(t *testing.T) {
	doc := NewDocument(1280, 800)
	parent := doc.CreateElement("div")

	for i := 0; i < 3; i++ {
		parent.AppendChild(doc.CreateElement("div"))
	}

	if parent.ChildCount() != 3 {
		t.Fatalf("ChildCount = %d, want 3", parent.ChildCount())
	}

	// Children returns a snapshot; mutating it must not affect the element.
	kids := parent.Children()
	kids[0] = nil
	if parent.Children()[0] == nil {
		t.Error("Children snapshot aliases internal slice")
	}
}
