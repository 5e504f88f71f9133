package event

// Handler processes specific event types
// Collaborators (audio, metrics, HUD) implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously at the end of the tick that emitted it
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler subscribed to the given types
type HandlerFunc struct {
	Types []EventType
	Func  func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Func(ev) }
func (h HandlerFunc) EventTypes() []EventType  { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch from the tick
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//
// Usage:
//  1. Create router: NewRouter(queue)
//  2. Register handlers: router.Register(h)
//  3. Each tick: router.DispatchAll() after the simulation step
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes all pending events and routes them to handlers in FIFO order
// Returns the dispatched events so the caller can mirror them elsewhere
func (r *Router) DispatchAll() []GameEvent {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return events
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
