package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrSynthesis marks a speech engine failure.
	ErrSynthesis = errors.New("speech synthesis failed")
	// ErrPlayback marks a sound load or playback failure.
	ErrPlayback = errors.New("sound playback failed")
	// ErrClosed is returned for sounds requested after Close.
	ErrClosed = errors.New("sequencer closed")
)

// StepError records a failed step. It is logged and reported in the
// Result; the sequence always continues past it.
type StepError struct {
	Step   Step
	Letter string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step for %q: %v", e.Step, e.Letter, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
