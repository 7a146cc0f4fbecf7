//go:build !cgo

package audio

import (
	"context"

	"phonicsboard/internal/playback"
)

// Loader reports ErrUnavailable for every sound when built without cgo.
type Loader struct{}

// Ensure Loader implements playback.Loader.
var _ playback.Loader = (*Loader)(nil)

// NewLoader creates a loader that cannot play anything.
func NewLoader(sampleRate int) *Loader {
	return &Loader{}
}

// Load implements playback.Loader.
func (l *Loader) Load(ctx context.Context, ref string) (playback.Sound, error) {
	if _, err := FormatOf(ref); err != nil {
		return nil, err
	}
	return nil, ErrUnavailable
}
