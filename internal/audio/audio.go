// Package audio loads phonics sound files for playback.
package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSampleRate is the output rate of the shared audio context.
const DefaultSampleRate = 44100

var (
	// ErrUnavailable is returned when the binary was built without audio
	// output support.
	ErrUnavailable = errors.New("audio output unavailable in this build")
	// ErrUnsupportedFormat is returned for files that are not mp3, ogg or wav.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Format is an audio container recognised by file extension.
type Format string

const (
	FormatMP3    Format = "mp3"
	FormatVorbis Format = "ogg"
	FormatWAV    Format = "wav"
)

// FormatOf picks the decoder for ref by its extension.
func FormatOf(ref string) (Format, error) {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".mp3":
		return FormatMP3, nil
	case ".ogg", ".oga":
		return FormatVorbis, nil
	case ".wav", ".wave":
		return FormatWAV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(ref))
	}
}
