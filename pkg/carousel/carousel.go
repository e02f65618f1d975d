package carousel

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/slidekit/slidekit/pkg/dom"
	"github.com/slidekit/slidekit/pkg/logging"
)

const (
	// DefaultInterval is the autoplay period used when Config.Interval is zero.
	DefaultInterval = 5 * time.Second

	// DragThreshold is the touch displacement, in device-independent pixels,
	// a drag must exceed to trigger a navigation.
	DragThreshold = 50.0

	// ResizeSettleDelay is how long resize events must stop arriving before
	// the track offset is recomputed.
	ResizeSettleDelay = 150 * time.Millisecond
)

// Config describes one carousel region. Track is required; every other
// field is optional.
type Config struct {
	// Track holds the slides. A nil track produces an inert controller.
	Track *dom.Element

	// PrevControl and NextControl, when present, navigate on click.
	PrevControl *dom.Element
	NextControl *dom.Element

	// IndicatorContainer, when present, receives one clickable dot per slide.
	IndicatorContainer *dom.Element

	// VisibleCount reports how many slides fit the viewport right now. It is
	// re-evaluated on every navigation and never cached. Nil means one.
	VisibleCount func() int

	// Autoplay self-advances the carousel every Interval. Note the zero
	// value disables it; DefaultConfig returns it enabled, matching the
	// usual host default.
	Autoplay bool

	// Interval is the autoplay period. Zero means DefaultInterval.
	Interval time.Duration

	// Clock supplies timers. Nil means the system clock; tests inject a
	// *clock.Mock.
	Clock clock.Clock

	// OnChange, when set, is called synchronously after every reposition.
	// It must not call back into the controller.
	OnChange func()
}

// DefaultConfig returns a Config with autoplay enabled at the default
// interval. Callers fill in the element handles.
func DefaultConfig() Config {
	return Config{
		Autoplay: true,
		Interval: DefaultInterval,
	}
}

// dragState tracks one in-progress touch gesture.
type dragState struct {
	startX   float64
	currentX float64
	active   bool
}

// Controller owns one carousel's state: leading index, autoplay timer slot,
// drag tracking, and the indicator dots it created. All public methods are
// safe for concurrent use; timer callbacks and host events serialize on the
// controller's lock.
type Controller struct {
	doc   *dom.Document
	track *dom.Element

	slides     []*dom.Element
	indicators []*dom.Element

	visibleCount func() int
	autoplay     bool
	interval     time.Duration
	clk          clock.Clock
	onChange     func()
	log          *logging.Logger

	mu          sync.Mutex
	index       int
	total       int
	timer       *clock.Timer
	timerActive bool
	drag        dragState
	inert       bool
	disposed    bool

	resize  *Debouncer
	handles []dom.ListenerHandle
}

// New constructs a controller for the region described by cfg and wires its
// listeners. A nil track yields an inert controller rather than an error so
// one missing region never blocks page setup.
func New(doc *dom.Document, cfg Config) *Controller {
	log, _ := logging.NewLogger("carousel")

	c := &Controller{
		doc:          doc,
		track:        cfg.Track,
		visibleCount: cfg.VisibleCount,
		autoplay:     cfg.Autoplay,
		interval:     cfg.Interval,
		clk:          cfg.Clock,
		onChange:     cfg.OnChange,
		log:          log,
	}
	if c.visibleCount == nil {
		c.visibleCount = func() int { return 1 }
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	if c.clk == nil {
		c.clk = clock.New()
	}

	if c.doc == nil || c.track == nil {
		c.inert = true
		c.log.Warnf("track not found, controller is inert")
		return c
	}

	c.slides = c.track.Children()
	c.total = len(c.slides)
	c.resize = NewDebouncer(c.clk, ResizeSettleDelay)

	// Live-region contract: announce changes politely so autoplay ticks do
	// not interrupt assistive technology.
	c.track.SetAttribute("aria-live", "polite")
	for _, slide := range c.slides {
		slide.SetAttribute("role", "listitem")
	}

	c.wire(cfg)
	c.buildIndicators(cfg.IndicatorContainer)

	c.mu.Lock()
	c.moveLocked()
	c.syncIndicatorsLocked()
	c.startAutoplayLocked()
	c.mu.Unlock()

	c.log.Debugf("constructed: slides=%d autoplay=%v interval=%s", c.total, c.autoplay, c.interval)
	return c
}

// wire registers every listener the controller owns.
func (c *Controller) wire(cfg Config) {
	add := func(h dom.ListenerHandle) { c.handles = append(c.handles, h) }

	add(cfg.PrevControl.AddEventListener(dom.EventClick, func(dom.Event) { c.Prev() }))
	add(cfg.NextControl.AddEventListener(dom.EventClick, func(dom.Event) { c.Next() }))

	add(c.track.AddEventListener(dom.EventPointerEnter, func(dom.Event) { c.PointerEnter() }))
	add(c.track.AddEventListener(dom.EventPointerLeave, func(dom.Event) { c.PointerLeave() }))

	passive := dom.ListenerOptions{Passive: true}
	add(c.track.AddEventListener(dom.EventTouchStart, func(ev dom.Event) { c.TouchStart(ev.X) }, passive))
	add(c.track.AddEventListener(dom.EventTouchMove, func(ev dom.Event) { c.TouchMove(ev.X) }, passive))
	add(c.track.AddEventListener(dom.EventTouchEnd, func(dom.Event) { c.TouchEnd() }, passive))

	if c.doc != nil {
		add(c.doc.AddEventListener(dom.EventResize, func(dom.Event) { c.handleResize() }))
	}
}

// buildIndicators creates one dot per slide, exactly once.
func (c *Controller) buildIndicators(container *dom.Element) {
	if container == nil {
		return
	}
	for i := range c.slides {
		dot := c.doc.CreateElement("span")
		dot.AddClass("indicator")
		dot.SetAttribute("aria-label", fmt.Sprintf("slide %d", i+1))

		c.handles = append(c.handles, dot.AddEventListener(dom.EventClick, func(dom.Event) { c.GoTo(i) }))

		container.AppendChild(dot)
		c.indicators = append(c.indicators, dot)
	}
}

// Next advances the leading index by one, wrapping to the first slide past
// the end of the reachable range.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return
	}
	c.advanceLocked()
}

// Prev moves the leading index back by one, wrapping to the last reachable
// position from the start.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return
	}

	c.retreatLocked()
}

// GoTo jumps to slide i, clamped to the reachable range [0, maxIndex].
func (c *Controller) GoTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return
	}

	max := c.maxIndexLocked()
	if i > max {
		i = max
	}
	if i < 0 {
		i = 0
	}
	c.index = i
	c.moveLocked()
	c.syncIndicatorsLocked()
}

// advanceLocked is Next without the lock, shared with the autoplay tick.
func (c *Controller) advanceLocked() {
	if c.index >= c.maxIndexLocked() {
		c.index = 0
	} else {
		c.index++
	}
	c.moveLocked()
	c.syncIndicatorsLocked()
}

// retreatLocked is Prev without the lock, shared with the drag handler.
func (c *Controller) retreatLocked() {
	if c.index <= 0 {
		c.index = c.maxIndexLocked()
	} else {
		c.index--
	}
	c.moveLocked()
	c.syncIndicatorsLocked()
}

// maxIndexLocked recomputes the last reachable leading index from the live
// visible count. Fewer slides than the window clamps it at zero.
func (c *Controller) maxIndexLocked() int {
	max := c.total - c.visibleNow()
	if max < 0 {
		max = 0
	}
	return max
}

// visibleNow evaluates the visible-count policy, flooring it at one.
func (c *Controller) visibleNow() int {
	v := c.visibleCount()
	if v < 1 {
		v = 1
	}
	return v
}

// moveLocked writes the track offset. The offset is a pure function of the
// index and the live visible count; nothing else feeds it.
func (c *Controller) moveLocked() {
	offset := -float64(c.index) * (100.0 / float64(c.visibleNow()))
	if offset == 0 {
		offset = 0 // avoid formatting negative zero
	}
	c.track.SetStyle("transform", "translateX("+strconv.FormatFloat(offset, 'f', -1, 64)+"%)")
	if c.onChange != nil {
		c.onChange()
	}
}

// syncIndicatorsLocked marks the dot at the current index active and every
// other dot inactive.
func (c *Controller) syncIndicatorsLocked() {
	for i, dot := range c.indicators {
		if i == c.index {
			dot.AddClass("active")
		} else {
			dot.RemoveClass("active")
		}
	}
}

// PointerEnter pauses autoplay while the pointer is over the region.
func (c *Controller) PointerEnter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return
	}
	c.stopAutoplayLocked()
}

// PointerLeave resumes autoplay, but only when enabled and no drag is in
// progress.
func (c *Controller) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert || c.drag.active {
		return
	}
	c.startAutoplayLocked()
}

// TouchStart begins drag tracking at x and pauses autoplay.
func (c *Controller) TouchStart(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return
	}
	c.drag = dragState{startX: x, currentX: x, active: true}
	c.stopAutoplayLocked()
}

// TouchMove records the latest drag position. The view does not follow the
// finger; the displacement is only measured.
func (c *Controller) TouchMove(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert || !c.drag.active {
		return
	}
	c.drag.currentX = x
}

// TouchEnd completes a drag: past the threshold it navigates once in the
// drag direction, under it nothing moves. Either way the drag is cleared
// and autoplay resumes when enabled.
func (c *Controller) TouchEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert || !c.drag.active {
		return
	}

	diff := c.drag.startX - c.drag.currentX
	c.drag = dragState{}

	if diff > DragThreshold {
		c.advanceLocked()
	} else if diff < -DragThreshold {
		c.retreatLocked()
	}

	c.startAutoplayLocked()
}

// handleResize debounces viewport changes, then recomputes the offset. The
// index is deliberately not re-clamped: a shrinking window can leave the
// offset past the last slide until the next navigation, which matches the
// host-page behavior this controller preserves.
func (c *Controller) handleResize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return
	}
	c.resize.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.disposed {
			return
		}
		c.moveLocked()
	})
}

// startAutoplayLocked arms the autoplay slot, tearing down any live timer
// first so at most one is ever outstanding.
func (c *Controller) startAutoplayLocked() {
	c.stopAutoplayLocked()
	if !c.autoplay {
		return
	}
	c.timerActive = true
	c.timer = c.clk.AfterFunc(c.interval, c.autoplayTick)
}

// stopAutoplayLocked cancels the autoplay slot if armed.
func (c *Controller) stopAutoplayLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerActive = false
}

// autoplayTick advances once and re-arms. A tick that raced a stop finds
// timerActive false and does nothing.
func (c *Controller) autoplayTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.timerActive {
		return
	}
	c.advanceLocked()
	c.timer = c.clk.AfterFunc(c.interval, c.autoplayTick)
}

// Index returns the current leading index.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Total returns the slide count.
func (c *Controller) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// MaxIndex returns the last reachable leading index at the current
// visible count.
func (c *Controller) MaxIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert {
		return 0
	}
	return c.maxIndexLocked()
}

// VisibleNow evaluates the visible-count policy at the current viewport.
func (c *Controller) VisibleNow() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleNow()
}

// TimerActive reports whether an autoplay timer is currently armed.
func (c *Controller) TimerActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timerActive
}

// Inert reports whether construction failed to resolve the track.
func (c *Controller) Inert() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inert
}

// Dispose cancels the autoplay and debounce timers and removes every
// listener the controller registered. The controller is inert afterwards.
func (c *Controller) Dispose() {
	c.mu.Lock()
	c.autoplay = false
	c.stopAutoplayLocked()
	c.inert = true
	c.disposed = true
	handles := c.handles
	c.handles = nil
	c.mu.Unlock()

	if c.resize != nil {
		c.resize.Stop()
	}
	for _, h := range handles {
		h.Remove()
	}
	c.log.Debugf("disposed")
}
