package events

import "slices"

// Bus queues events posted during a tick and dispatches them to
// subscribers. It is owned by one view and is not safe for concurrent use.
type Bus struct {
	queue     []Event
	listeners map[Type][]*listener
	all       []*listener
	nextID    int
}

type listener struct {
	id int
	fn func(Event)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[Type][]*listener)}
}

// Post appends ev to the queue.
func (b *Bus) Post(ev Event) {
	b.queue = append(b.queue, ev)
}

// Poll removes and returns the oldest queued event.
func (b *Bus) Poll() (Event, bool) {
	if len(b.queue) == 0 {
		return Event{}, false
	}
	ev := b.queue[0]
	b.queue[0] = Event{}
	b.queue = b.queue[1:]
	return ev, true
}

// Len returns the number of queued events.
func (b *Bus) Len() int { return len(b.queue) }

// Drain removes and returns every queued event.
func (b *Bus) Drain() []Event {
	out := b.queue
	b.queue = nil
	return out
}

// Subscribe registers fn for events of type t. The returned function
// removes the subscription.
func (b *Bus) Subscribe(t Type, fn func(Event)) (cancel func()) {
	b.nextID++
	l := &listener{id: b.nextID, fn: fn}
	b.listeners[t] = append(b.listeners[t], l)
	return func() {
		b.listeners[t] = slices.DeleteFunc(b.listeners[t], func(x *listener) bool { return x == l })
	}
}

// SubscribeAll registers fn for every event type.
func (b *Bus) SubscribeAll(fn func(Event)) (cancel func()) {
	b.nextID++
	l := &listener{id: b.nextID, fn: fn}
	b.all = append(b.all, l)
	return func() {
		b.all = slices.DeleteFunc(b.all, func(x *listener) bool { return x == l })
	}
}

// Dispatch delivers ev to the subscribers of its type, then to the
// catch-all subscribers, each in registration order.
func (b *Bus) Dispatch(ev Event) {
	for _, l := range slices.Clone(b.listeners[ev.Type]) {
		l.fn(ev)
	}
	for _, l := range slices.Clone(b.all) {
		l.fn(ev)
	}
}

// Pump dispatches queued events until the queue is empty, including events
// posted by subscribers along the way, and returns them in order.
func (b *Bus) Pump() []Event {
	var out []Event
	for {
		ev, ok := b.Poll()
		if !ok {
			return out
		}
		out = append(out, ev)
		b.Dispatch(ev)
	}
}
