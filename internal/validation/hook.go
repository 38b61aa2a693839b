package validation

// Event tells a Hook which point of an item's lifecycle was reached.
type Event int

const (
	// EventStart is raised once before an item is processed.
	EventStart Event = iota
	// EventSuccess is raised after an item produced a product.
	EventSuccess
	// EventFailure is raised after an item produced no product.
	EventFailure
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventSuccess:
		return "success"
	case EventFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Hook observes the lifecycle of every attempted item and returns the
// updated state. product is the new product on EventSuccess, the last known
// product on EventFailure of a fold, and the zero value otherwise.
type Hook[S, R, P any] func(state S, event Event, raw R, product P) S

// NoHook leaves the state untouched.
func NoHook[S, R, P any](state S, _ Event, _ R, _ P) S {
	return state
}
