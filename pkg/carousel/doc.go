// Package carousel implements the slider controller at the heart of
// slidekit: given a track element containing slides, a Controller owns the
// leading slide index, wrap-around navigation, indicator dots, an optional
// autoplay timer, and touch-drag navigation. Multiple controllers coexist
// independently on one page; each is configured with its own elements,
// visible-window policy, and autoplay flag.
//
// The controller emits only style and class/attribute writes on the
// dom elements it was given. How many slides fit the viewport is an
// injected function, re-evaluated on every navigation so responsive hosts
// never serve a stale value.
//
// Example usage:
//
//	doc := dom.NewDocument(1280, 800)
//	ctrl := carousel.New(doc, carousel.Config{
//	    Track:              doc.GetElementByID("testimonial-track"),
//	    IndicatorContainer: doc.GetElementByID("testimonial-dots"),
//	    VisibleCount:       func() int { w, _ := doc.Viewport(); if w >= 992 { return 3 }; return 1 },
//	    Autoplay:           true,
//	    Clock:              clock.New(),
//	})
//	defer ctrl.Dispose()
//
//	ctrl.Next()
//
// Error handling follows the host-page contract: a missing track produces
// an inert controller whose methods all no-op, never a panic, so one broken
// region cannot block setup of its siblings.
package carousel
