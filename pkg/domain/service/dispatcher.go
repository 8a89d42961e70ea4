package service

// Event is a domain event emitted after a successful mutation.
type Event interface {
	Type() string
}

// EventDispatcher delivers domain events to whoever is listening. Dispatch
// failures never roll back the mutation that produced the event.
type EventDispatcher interface {
	Dispatch(event Event) error
}
