package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// recorder collects capability calls from every fake in call order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *recorder) index(call string) int {
	for i, c := range r.snapshot() {
		if c == call {
			return i
		}
	}
	return -1
}

type fakeSpeaker struct {
	rec  *recorder
	err  error
	opts []VoiceOptions
}

func (f *fakeSpeaker) Speak(ctx context.Context, text string, opts VoiceOptions) error {
	f.rec.add("speak(%s)", text)
	f.opts = append(f.opts, opts)
	return f.err
}

// fakeLoader hands out fakeSounds. Sounds for refs in block wait in Play
// until stopped. Loads for refs in gate report on loading and wait until
// their channel is closed.
type fakeLoader struct {
	rec     *recorder
	loadErr error
	playErr error
	block   map[string]bool
	gate    map[string]chan struct{}
	loading chan string

	mu      sync.Mutex
	sounds  []*fakeSound
	playing chan string
}

func newFakeLoader(rec *recorder) *fakeLoader {
	return &fakeLoader{
		rec:     rec,
		block:   map[string]bool{},
		gate:    map[string]chan struct{}{},
		loading: make(chan string, 16),
		playing: make(chan string, 16),
	}
}

func (l *fakeLoader) Load(ctx context.Context, ref string) (Sound, error) {
	l.rec.add("load(%s)", ref)
	if g, ok := l.gate[ref]; ok {
		l.loading <- ref
		<-g
	}
	if l.loadErr != nil {
		return nil, l.loadErr
	}
	s := &fakeSound{ref: ref, rec: l.rec, playErr: l.playErr, stopped: make(chan struct{}), block: l.block[ref], playing: l.playing}
	l.mu.Lock()
	l.sounds = append(l.sounds, s)
	l.mu.Unlock()
	return s, nil
}

func (l *fakeLoader) all() []*fakeSound {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*fakeSound(nil), l.sounds...)
}

type fakeSound struct {
	ref     string
	rec     *recorder
	playErr error
	block   bool
	playing chan string

	once     sync.Once
	stopped  chan struct{}
	mu       sync.Mutex
	releases int
}

func (s *fakeSound) Play(ctx context.Context) error {
	s.rec.add("play(%s)", s.ref)
	s.playing <- s.ref
	if s.playErr != nil {
		return s.playErr
	}
	if !s.block {
		return nil
	}
	select {
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *fakeSound) Stop() {
	s.rec.add("stop(%s)", s.ref)
	s.once.Do(func() { close(s.stopped) })
}

func (s *fakeSound) Release() error {
	s.rec.add("release(%s)", s.ref)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases++
	return nil
}

func (s *fakeSound) releaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releases
}

var errEngine = errors.New("engine exploded")
