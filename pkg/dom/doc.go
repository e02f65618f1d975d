// Package dom provides a minimal in-memory document tree used as the host
// page abstraction for slidekit controllers.
//
// It models only the surface a carousel needs from a page: element lookup by
// id, child enumeration, class/attribute/inline-style writes, event listener
// registration and dispatch, and viewport geometry. It is not a browser DOM
// and deliberately knows nothing about layout or rendering; hosts (tests,
// the terminal demo) decide how styles and classes become pixels or cells.
//
// Example usage:
//
//	doc := dom.NewDocument(1280, 800)
//	track := doc.CreateElement("div")
//	doc.SetElementID(track, "hero-track")
//	track.AppendChild(doc.CreateElement("div"))
//
//	track.AddEventListener(dom.EventClick, func(dom.Event) { ... })
//	track.Dispatch(dom.Event{Type: dom.EventClick})
//
// All element and document operations are safe for concurrent use; timer
// callbacks and the host event loop may touch the tree at the same time.
package dom
