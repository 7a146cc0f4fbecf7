//go:build cgo

package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"phonicsboard/internal/playback"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// pollInterval is how often a playing sound checks for end of stream.
const pollInterval = 20 * time.Millisecond

var (
	contextOnce sync.Once
	sharedCtx   *ebitenaudio.Context
)

// sharedContext returns the process-wide audio context; ebiten allows only
// one.
func sharedContext(sampleRate int) *ebitenaudio.Context {
	contextOnce.Do(func() {
		if c := ebitenaudio.CurrentContext(); c != nil {
			sharedCtx = c
			return
		}
		sharedCtx = ebitenaudio.NewContext(sampleRate)
	})
	return sharedCtx
}

// Loader decodes sound files into ebiten audio players.
type Loader struct {
	sampleRate int
}

// Ensure Loader implements playback.Loader.
var _ playback.Loader = (*Loader)(nil)

// NewLoader creates a loader. A non-positive rate uses DefaultSampleRate.
func NewLoader(sampleRate int) *Loader {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Loader{sampleRate: sampleRate}
}

// Load implements playback.Loader.
func (l *Loader) Load(ctx context.Context, ref string) (playback.Sound, error) {
	format, err := FormatOf(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read sound: %w", err)
	}
	stream, err := decode(format, l.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	player, err := sharedContext(l.sampleRate).NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("new player: %w", err)
	}
	return &sound{player: player, stop: make(chan struct{})}, nil
}

func decode(format Format, sampleRate int, r io.Reader) (io.Reader, error) {
	switch format {
	case FormatMP3:
		return mp3.DecodeWithSampleRate(sampleRate, r)
	case FormatVorbis:
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	case FormatWAV:
		return wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// sound is one decoded file bound to an ebiten player.
type sound struct {
	player   *ebitenaudio.Player
	stopOnce sync.Once
	stop     chan struct{}
	closeMu  sync.Mutex
	closed   bool
}

// Play implements playback.Sound.
func (s *sound) Play(ctx context.Context) error {
	s.player.Play()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			s.player.Pause()
			return nil
		case <-ctx.Done():
			s.player.Pause()
			return ctx.Err()
		case <-ticker.C:
			if !s.player.IsPlaying() {
				return nil
			}
		}
	}
}

// Stop implements playback.Sound.
func (s *sound) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Release implements playback.Sound.
func (s *sound) Release() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.player.Close()
}
