// Package playback runs the ordered speech and audio sequence played when a
// letter is chosen.
//
// One invocation runs its steps strictly in order (name, phonics sound,
// word), waiting for each to finish. Invocations may overlap when the child
// taps quickly; the sequencer then guarantees that a later phonics step stops
// and releases the sound left by an earlier one before loading its own.
// Speech is not interrupted by a new selection.
package playback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/progress"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Step identifies one stage of the sequence.
type Step int

const (
	StepName Step = iota
	StepPhonics
	StepWord
)

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepPhonics:
		return "phonics"
	case StepWord:
		return "word"
	default:
		return "unknown"
	}
}

// Result describes what one invocation did.
type Result struct {
	Invocation uint64
	Letter     string
	Steps      []Step       // steps that ran, in order
	Failures   []*StepError // non-fatal failures, in order
}

// Sequencer plays letters. It is safe for concurrent use.
type Sequencer struct {
	speaker Speaker
	loader  Loader
	catalog SoundCatalog
	voice   VoiceOptions
	logger  *slog.Logger
	tracer  trace.Tracer
	emitter progress.Emitter

	invocations atomic.Uint64

	mu     sync.Mutex
	active *activeSound // the one sound this sequencer owns
	closed bool
	// loads counts started loads; a load whose number is no longer current
	// when it finishes has been displaced.
	loads uint64
}

// activeSound wraps the tracked Sound so identity checks never compare
// interface values of possibly uncomparable types.
type activeSound struct {
	sound  Sound
	ref    string
	letter string
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithVoice overrides the speech options.
func WithVoice(v VoiceOptions) Option {
	return func(s *Sequencer) { s.voice = v }
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer for invocation spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Sequencer) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithEmitter sets the receiver of step events.
func WithEmitter(e progress.Emitter) Option {
	return func(s *Sequencer) {
		if e != nil {
			s.emitter = e
		}
	}
}

// New creates a Sequencer. A nil catalog means no letter has a sound.
func New(speaker Speaker, loader Loader, catalog SoundCatalog, opts ...Option) *Sequencer {
	s := &Sequencer{
		speaker: speaker,
		loader:  loader,
		catalog: catalog,
		voice:   DefaultVoice,
		logger:  slog.Default(),
		tracer:  otel.Tracer("phonicsboard/playback"),
		emitter: progress.Discard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play runs the sequence for entry. Steps whose flag is off are omitted;
// the order of the remaining steps never changes. Failures are logged and
// returned in the Result but never stop the sequence. If ctx is cancelled,
// steps that have not started yet are skipped.
func (s *Sequencer) Play(ctx context.Context, entry alphabet.Entry, flags Flags) Result {
	id := s.invocations.Add(1)
	letter := entry.Letter()
	res := Result{Invocation: id, Letter: letter}

	ctx, span := s.tracer.Start(ctx, "phonics.playback", trace.WithAttributes(
		attribute.String("phonics.letter", letter),
		attribute.Int64("phonics.invocation", int64(id)),
		attribute.Bool("phonics.flags.name", flags.PlayLetterName),
		attribute.Bool("phonics.flags.phonics", flags.PlayPhonics),
		attribute.Bool("phonics.flags.word", flags.PlayWord),
	))
	defer span.End()

	if flags.PlayLetterName {
		// Lowercase on purpose: engines read a lone capital as "capital a".
		text := strings.ToLower(letter)
		s.runStep(ctx, &res, StepName, func(ctx context.Context) error {
			return s.speak(ctx, text)
		})
	}

	if flags.PlayPhonics {
		ref, ok := s.soundFor(letter)
		if ok {
			s.runStep(ctx, &res, StepPhonics, func(ctx context.Context) error {
				return s.playSound(ctx, letter, ref)
			})
		} else {
			s.emit(id, letter, StepPhonics, progress.StatusSkipped, "no sound")
		}
	}

	if flags.PlayWord {
		word := entry.Phonics
		s.runStep(ctx, &res, StepWord, func(ctx context.Context) error {
			return s.speak(ctx, word)
		})
	}

	if len(res.Failures) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d step(s) failed", len(res.Failures)))
	}
	return res
}

func (s *Sequencer) soundFor(letter string) (string, bool) {
	if s.catalog == nil {
		return "", false
	}
	return s.catalog.SoundFor(letter)
}

func (s *Sequencer) runStep(ctx context.Context, res *Result, step Step, fn func(context.Context) error) {
	if ctx.Err() != nil {
		s.emit(res.Invocation, res.Letter, step, progress.StatusSkipped, "cancelled")
		return
	}

	ctx, span := s.tracer.Start(ctx, "phonics.step."+step.String())
	defer span.End()

	res.Steps = append(res.Steps, step)
	s.emit(res.Invocation, res.Letter, step, progress.StatusRunning, "")

	if err := fn(ctx); err != nil {
		stepErr := &StepError{Step: step, Letter: res.Letter, Err: err}
		res.Failures = append(res.Failures, stepErr)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("playback step failed",
			"step", step.String(),
			"letter", res.Letter,
			"invocation", res.Invocation,
			"error", err)
		s.emit(res.Invocation, res.Letter, step, progress.StatusError, err.Error())
		return
	}
	s.emit(res.Invocation, res.Letter, step, progress.StatusDone, "")
}

func (s *Sequencer) speak(ctx context.Context, text string) error {
	if s.speaker == nil {
		return nil
	}
	if err := s.speaker.Speak(ctx, text, s.voice); err != nil {
		return fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	return nil
}

// playSound stops and releases the previously active sound, then loads,
// tracks and plays the new one. Loading runs without the lock. A sound whose
// load was overtaken by a later invocation or by Close is released unplayed.
// The new sound is released when it finishes unless a later invocation
// already displaced (and released) it.
func (s *Sequencer) playSound(ctx context.Context, letter, ref string) error {
	if s.loader == nil {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrPlayback, ErrClosed)
	}
	s.releaseActiveLocked()
	s.loads++
	gen := s.loads
	s.mu.Unlock()

	snd, err := s.loader.Load(ctx, ref)
	if err != nil {
		return fmt.Errorf("%w: load %s: %w", ErrPlayback, ref, err)
	}

	s.mu.Lock()
	if s.closed || s.loads != gen {
		closed := s.closed
		s.mu.Unlock()
		snd.Stop()
		if err := snd.Release(); err != nil {
			s.logger.Debug("release displaced sound", "ref", ref, "letter", letter, "error", err)
		}
		if closed {
			return fmt.Errorf("%w: %w", ErrPlayback, ErrClosed)
		}
		return nil
	}
	cur := &activeSound{sound: snd, ref: ref, letter: letter}
	s.active = cur
	s.mu.Unlock()

	playErr := snd.Play(ctx)

	s.mu.Lock()
	if s.active == cur {
		s.active = nil
		if err := snd.Release(); err != nil {
			s.logger.Debug("release sound", "ref", ref, "error", err)
		}
	}
	s.mu.Unlock()

	if playErr != nil {
		return fmt.Errorf("%w: play %s: %w", ErrPlayback, ref, playErr)
	}
	return nil
}

// releaseActiveLocked stops and releases the tracked sound. Caller holds mu.
func (s *Sequencer) releaseActiveLocked() {
	if s.active == nil {
		return
	}
	prev := s.active
	s.active = nil
	prev.sound.Stop()
	if err := prev.sound.Release(); err != nil {
		s.logger.Debug("release displaced sound", "ref", prev.ref, "letter", prev.letter, "error", err)
	}
}

// Active reports the letter whose sound is currently tracked, if any.
func (s *Sequencer) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return "", false
	}
	return s.active.letter, true
}

// Close stops and releases any tracked sound. Later phonics steps fail with
// ErrClosed; speech steps still run. Close is idempotent.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.releaseActiveLocked()
}

func (s *Sequencer) emit(id uint64, letter string, step Step, status progress.Status, msg string) {
	s.emitter.Emit(progress.Event{
		Invocation: id,
		Letter:     letter,
		Step:       step.String(),
		Status:     status,
		Message:    msg,
	})
}
