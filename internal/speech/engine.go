// Package speech defines the voice-synthesis boundary and a simulated
// engine used where no real synthesizer exists.
package speech

// Callbacks mirror the host speech API's utterance lifecycle triple.
type Callbacks struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

// Handle is a cancellable reference to one submitted utterance.
type Handle interface {
	Cancel()
}

// Engine is the voice-synthesis boundary. Implementations play at most
// one utterance at a time and queue the rest in submission order.
type Engine interface {
	// Speak submits an utterance and returns a cancellable handle.
	Speak(text string, rate, pitch float64, locale string, cb Callbacks) (Handle, error)
	// CancelAll drops every queued utterance and cancels the one in flight.
	CancelAll()
}
