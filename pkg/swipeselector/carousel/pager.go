package carousel

import (
	"math"
	"time"
)

// Page is what a host needs to draw one page of the selector.
type Page struct {
	Index int
	Item  Item
	Style ContentStyle
}

// PageSource supplies pages to a paging surface.
type PageSource interface {
	Count() int
	Page(i int) Page
}

// PagingSurface is the swipeable viewport showing one page at a time. It
// publishes PageSettled on the bus whenever it comes to rest on a page.
type PagingSurface interface {
	// Attach connects the surface to its page source and event bus.
	Attach(src PageSource, bus *Bus)
	// JumpTo moves to index. Without animation the surface settles before
	// returning.
	JumpTo(index int, animate bool)
	// Reload discards cached page content after the source changed.
	Reload()
	// Update advances running animations to now and reports whether more
	// frames are needed.
	Update(now time.Time) bool
}

// flingVelocity is the release speed, in pages per second, above which a
// drag moves on to the next page regardless of how far it travelled.
const flingVelocity = 1.2

// SlidePager is a PagingSurface that tracks a fractional scroll offset in
// page units. Offset 2.5 means half of page 2 and half of page 3 are
// visible. Hosts call BeginDrag, DragBy and EndDrag from their pointer
// handling and draw pages at (index - Offset()) * pageWidth.
type SlidePager struct {
	src   PageSource
	bus   *Bus
	clock Clock

	duration  time.Duration
	pageWidth float64

	offset  tween
	target  int
	current int

	dragging bool
	lastDrag time.Time
	velocity float64
}

// NewSlidePager creates a pager that animates jumps over duration.
func NewSlidePager(duration time.Duration, clock Clock) *SlidePager {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SlidePager{
		clock:     clock,
		duration:  duration,
		pageWidth: 1,
	}
}

func (p *SlidePager) Attach(src PageSource, bus *Bus) {
	p.src = src
	p.bus = bus
}

// SetPageWidth sets the width of one page in the units DragBy receives.
func (p *SlidePager) SetPageWidth(width float64) {
	if width > 0 {
		p.pageWidth = width
	}
}

func (p *SlidePager) count() int {
	if p.src == nil {
		return 0
	}
	return p.src.Count()
}

func (p *SlidePager) JumpTo(index int, animate bool) {
	if index < 0 || index >= p.count() {
		return
	}
	p.dragging = false
	p.slideTo(index, animate)
}

func (p *SlidePager) slideTo(index int, animate bool) {
	p.target = index
	if !animate || p.duration <= 0 || p.offset.value == float64(index) {
		p.offset.set(float64(index))
		p.settle(index)
		return
	}
	p.offset.animate(p.offset.value, float64(index), p.clock.Now(), p.duration, EaseOut)
}

func (p *SlidePager) settle(index int) {
	p.current = index
	if p.bus != nil {
		p.bus.Publish(PageSettled{Index: index})
	}
}

// Reload stops any motion and clamps the offset to the new page count.
// It does not publish.
func (p *SlidePager) Reload() {
	p.dragging = false
	n := p.count()
	switch {
	case n == 0:
		p.current = 0
	case p.current >= n:
		p.current = n - 1
	}
	p.target = p.current
	p.offset.set(float64(p.current))
}

func (p *SlidePager) Update(now time.Time) bool {
	if p.offset.update(now) {
		p.settle(p.target)
		return false
	}
	return p.offset.running
}

// BeginDrag starts a drag gesture, stopping any running slide.
func (p *SlidePager) BeginDrag() {
	if p.count() == 0 {
		return
	}
	p.offset.set(p.offset.value)
	p.dragging = true
	p.lastDrag = p.clock.Now()
	p.velocity = 0
}

// DragBy moves the content by dx. Dragging left (negative dx) reveals the
// next page. The offset is clamped to the first and last pages.
func (p *SlidePager) DragBy(dx float64) {
	if !p.dragging {
		return
	}

	delta := -dx / p.pageWidth
	last := float64(p.count() - 1)
	next := math.Max(0, math.Min(last, p.offset.value+delta))

	now := p.clock.Now()
	if elapsed := now.Sub(p.lastDrag).Seconds(); elapsed > 0 {
		p.velocity = (next - p.offset.value) / elapsed
	}
	p.lastDrag = now
	p.offset.set(next)
}

// EndDrag releases the gesture and slides to the nearest page, or to the
// neighbouring page in the direction of a fast fling.
func (p *SlidePager) EndDrag() {
	if !p.dragging {
		return
	}
	p.dragging = false

	pos := p.offset.value
	index := int(math.Round(pos))
	switch {
	case p.velocity > flingVelocity:
		index = int(math.Floor(pos)) + 1
	case p.velocity < -flingVelocity:
		index = int(math.Ceil(pos)) - 1
	}
	index = max(0, min(p.count()-1, index))

	p.slideTo(index, true)
}

// Dragging reports whether a drag gesture is in progress.
func (p *SlidePager) Dragging() bool {
	return p.dragging
}

// Animating reports whether a slide is running.
func (p *SlidePager) Animating() bool {
	return p.offset.running
}

// Offset returns the scroll position in page units.
func (p *SlidePager) Offset() float64 {
	return p.offset.value
}

// Current returns the page the pager last settled on.
func (p *SlidePager) Current() int {
	return p.current
}

// Target returns the page the pager is heading to.
func (p *SlidePager) Target() int {
	return p.target
}

// VisiblePages returns the indices of the pages that intersect the
// viewport, at most two.
func (p *SlidePager) VisiblePages() []int {
	n := p.count()
	if n == 0 {
		return nil
	}
	first := int(math.Floor(p.offset.value))
	first = max(0, min(n-1, first))
	if float64(first) == p.offset.value || first+1 >= n {
		return []int{first}
	}
	return []int{first, first + 1}
}

// Page returns page i from the attached source.
func (p *SlidePager) Page(i int) Page {
	return p.src.Page(i)
}
