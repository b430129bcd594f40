package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// NavigationEventKind identifies navigation outcome events.
type NavigationEventKind string

const (
	NavigationEventPathFound   NavigationEventKind = "path_found"
	NavigationEventUnreachable NavigationEventKind = "unreachable"
	NavigationEventStale       NavigationEventKind = "stale"
	NavigationEventArrived     NavigationEventKind = "arrived"
	NavigationEventDeferred    NavigationEventKind = "deferred"
)

const navigationEventType = "navigation"

// NavigationEvent is emitted when an agent's navigation state resolves.
type NavigationEvent struct {
	Entity Entity
	Kind   NavigationEventKind
	// Count carries batch sizes for aggregate events such as deferrals.
	Count int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushNavigation adds a navigation event.
func (q *EventQueue) PushNavigation(evt NavigationEvent) {
	q.Push(Event{Type: navigationEventType, Data: evt})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// AsNavigation unwraps a navigation event.
func (e Event) AsNavigation() (NavigationEvent, bool) {
	if e.Type != navigationEventType {
		return NavigationEvent{}, false
	}
	evt, ok := e.Data.(NavigationEvent)
	return evt, ok
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
