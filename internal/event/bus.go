package event

// Bus carries events from background pipelines to the single presentation
// consumer. Rendering stays serialized because exactly one goroutine drains
// Events; producers never touch the presentation layer directly.
type Bus struct {
	ch chan Event
}

// NewBus creates a bus with the given buffer. The buffer keeps Publish from
// blocking a pipeline while the consumer renders.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 64
	}
	return &Bus{ch: make(chan Event, buffer)}
}

// Publish enqueues an event for the consumer.
func (b *Bus) Publish(e Event) {
	b.ch <- e
}

// Events returns the receive side for the single consumer loop.
func (b *Bus) Events() <-chan Event {
	return b.ch
}
