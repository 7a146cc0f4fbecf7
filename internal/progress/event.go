// Package progress carries playback step events from the sequencer to the UI.
package progress

import "time"

// Status indicates the state of a playback step.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Event describes one step transition of a playback invocation.
type Event struct {
	Invocation uint64 // sequence number of the invocation
	Letter     string
	Step       string
	Status     Status
	Message    string
	Timestamp  time.Time
}

// Emitter receives events. Implementations must not block the sequencer.
type Emitter interface {
	Emit(ev Event)
}

// ChanEmitter emits events to a channel.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; the status line can miss an update.
	}
}

// Discard drops every event.
type Discard struct{}

// Emit implements Emitter.
func (Discard) Emit(Event) {}
