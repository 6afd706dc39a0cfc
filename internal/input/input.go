package input

// Symbol is an abstract key, independent of the device it came from
type Symbol rune

type Event struct {
	Symbol  Symbol
	Pressed bool // false on release
	Quit    bool
}

// Source reads raw key events on its own goroutine and hands them over
// a channel, so the frame loop can drain them without blocking.
type Source interface {
	Start(events chan<- Event) error
	Close() error

	// Releases reports whether the source emits key release events
	Releases() bool
}
