package carousel

// Side identifies a navigation affordance.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Event is a message published on a Bus.
type Event interface {
	event()
}

// PageSettled is published by a paging surface when it comes to rest on a
// page, whether after a gesture or a programmatic jump.
type PageSettled struct {
	Index int
}

// AffordanceClicked is published when the user activates the previous or
// next affordance.
type AffordanceClicked struct {
	Side Side
}

func (PageSettled) event()       {}
func (AffordanceClicked) event() {}

// Bus delivers events to a single handler in arrival order. An event
// published while the handler is running is queued and delivered after the
// current one finishes, so every transition runs to completion first.
//
// A Bus belongs to the UI thread and is not safe for concurrent use.
type Bus struct {
	handler     func(Event)
	queue       []Event
	dispatching bool
}

// NewBus creates a Bus with no subscriber.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe installs the handler, replacing any previous one.
func (b *Bus) Subscribe(handler func(Event)) {
	b.handler = handler
}

// Publish queues ev and drains the queue unless a dispatch is already in
// progress further up the stack.
func (b *Bus) Publish(ev Event) {
	b.queue = append(b.queue, ev)
	if b.dispatching {
		return
	}

	b.dispatching = true
	defer func() { b.dispatching = false }()

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		if b.handler != nil {
			b.handler(next)
		}
	}
}

// Pending returns the number of queued, undelivered events.
func (b *Bus) Pending() int {
	return len(b.queue)
}
