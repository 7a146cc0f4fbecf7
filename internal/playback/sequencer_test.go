package playback

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	entryA = alphabet.Entry{Char: 'A', Phonics: "apple", Speech: "Ay"}
	entryB = alphabet.Entry{Char: 'B', Phonics: "ball", Speech: "Bee"}
	sounds = alphabet.SoundMap{"A": "a.mp3", "B": "b.mp3"}
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSequencer(rec *recorder, opts ...Option) (*Sequencer, *fakeSpeaker, *fakeLoader) {
	sp := &fakeSpeaker{rec: rec}
	ld := newFakeLoader(rec)
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return New(sp, ld, sounds, opts...), sp, ld
}

func TestPlay_AllFlagsOff(t *testing.T) {
	rec := &recorder{}
	s, _, _ := newTestSequencer(rec)

	res := s.Play(context.Background(), entryA, Flags{})

	assert.Empty(t, rec.snapshot(), "expected no capability calls")
	assert.Empty(t, res.Steps)
	assert.Empty(t, res.Failures)
}

func TestPlay_PhonicsWithoutCatalogSound(t *testing.T) {
	rec := &recorder{}
	s, _, _ := newTestSequencer(rec)
	entryQ := alphabet.Entry{Char: 'Q', Phonics: "queen", Speech: "Cue"}

	res := s.Play(context.Background(), entryQ, Flags{PlayPhonics: true})

	assert.Empty(t, rec.snapshot(), "expected no audio call for a letter without sound")
	assert.Empty(t, res.Steps)
}

func TestPlay_NameAndPhonicsScenario(t *testing.T) {
	rec := &recorder{}
	s, sp, _ := newTestSequencer(rec)

	res := s.Play(context.Background(), entryA, Flags{PlayLetterName: true, PlayPhonics: true})

	want := []string{"speak(a)", "load(a.mp3)", "play(a.mp3)", "release(a.mp3)"}
	assert.Equal(t, want, rec.snapshot())
	assert.Equal(t, []Step{StepName, StepPhonics}, res.Steps)
	require.Len(t, sp.opts, 1)
	assert.Equal(t, DefaultVoice, sp.opts[0])
	_, active := s.Active()
	assert.False(t, active, "finished sound must be untracked")
}

func TestPlay_OrderForEverySubset(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		flags := Flags{
			PlayLetterName: mask&1 != 0,
			PlayPhonics:    mask&2 != 0,
			PlayWord:       mask&4 != 0,
		}
		rec := &recorder{}
		s, _, _ := newTestSequencer(rec)
		res := s.Play(context.Background(), entryA, flags)

		var want []Step
		var wantCalls []string
		if flags.PlayLetterName {
			want = append(want, StepName)
			wantCalls = append(wantCalls, "speak(a)")
		}
		if flags.PlayPhonics {
			want = append(want, StepPhonics)
			wantCalls = append(wantCalls, "load(a.mp3)", "play(a.mp3)", "release(a.mp3)")
		}
		if flags.PlayWord {
			want = append(want, StepWord)
			wantCalls = append(wantCalls, "speak(apple)")
		}
		if !reflect.DeepEqual(res.Steps, want) {
			t.Errorf("flags %+v: steps = %v, want %v", flags, res.Steps, want)
		}
		if !reflect.DeepEqual(rec.snapshot(), wantCalls) && !(len(wantCalls) == 0 && len(rec.snapshot()) == 0) {
			t.Errorf("flags %+v: calls = %v, want %v", flags, rec.snapshot(), wantCalls)
		}
	}
}

func TestPlay_FailuresAreNonFatal(t *testing.T) {
	rec := &recorder{}
	s, sp, ld := newTestSequencer(rec)
	sp.err = errEngine
	ld.loadErr = errors.New("no such file")

	res := s.Play(context.Background(), entryA, Flags{PlayLetterName: true, PlayPhonics: true, PlayWord: true})

	assert.Equal(t, []Step{StepName, StepPhonics, StepWord}, res.Steps, "every step must still run")
	require.Len(t, res.Failures, 3)
	assert.ErrorIs(t, res.Failures[0], ErrSynthesis)
	assert.ErrorIs(t, res.Failures[0], errEngine)
	assert.ErrorIs(t, res.Failures[1], ErrPlayback)
	assert.ErrorIs(t, res.Failures[2], ErrSynthesis)
	assert.Equal(t, StepPhonics, res.Failures[1].Step)
	assert.Equal(t, "A", res.Failures[1].Letter)
}

func TestPlay_PlayErrorReleasesSound(t *testing.T) {
	rec := &recorder{}
	s, _, ld := newTestSequencer(rec)
	ld.playErr = errors.New("device lost")

	res := s.Play(context.Background(), entryA, Flags{PlayPhonics: true, PlayWord: true})

	require.Len(t, res.Failures, 1)
	assert.ErrorIs(t, res.Failures[0], ErrPlayback)
	sounds := ld.all()
	require.Len(t, sounds, 1)
	assert.Equal(t, 1, sounds[0].releaseCount())
	assert.Equal(t, "speak(apple)", rec.snapshot()[len(rec.snapshot())-1])
}

func TestPlay_NewSelectionPreemptsActiveSound(t *testing.T) {
	rec := &recorder{}
	s, _, ld := newTestSequencer(rec)
	ld.block["a.mp3"] = true

	doneA := make(chan Result, 1)
	go func() {
		doneA <- s.Play(context.Background(), entryA, Flags{PlayPhonics: true})
	}()

	select {
	case ref := <-ld.playing:
		require.Equal(t, "a.mp3", ref)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for A to start playing")
	}
	letter, ok := s.Active()
	require.True(t, ok)
	require.Equal(t, "A", letter)

	resB := s.Play(context.Background(), entryB, Flags{PlayPhonics: true})
	assert.Empty(t, resB.Failures)

	select {
	case resA := <-doneA:
		assert.Empty(t, resA.Failures, "a displaced sound is not a failure")
	case <-time.After(2 * time.Second):
		t.Fatal("A never finished after being displaced")
	}

	stopA := rec.index("stop(a.mp3)")
	releaseA := rec.index("release(a.mp3)")
	loadB := rec.index("load(b.mp3)")
	require.NotEqual(t, -1, stopA, "A must be stopped: %v", rec.snapshot())
	require.NotEqual(t, -1, releaseA, "A must be released: %v", rec.snapshot())
	require.NotEqual(t, -1, loadB)
	assert.Less(t, stopA, releaseA)
	assert.Less(t, releaseA, loadB, "A must be released before B is created")

	for _, snd := range ld.all() {
		assert.Equal(t, 1, snd.releaseCount(), "sound %s released more than once", snd.ref)
	}
}

func TestClose_ReleasesActiveSound(t *testing.T) {
	rec := &recorder{}
	s, _, ld := newTestSequencer(rec)
	ld.block["a.mp3"] = true

	done := make(chan Result, 1)
	go func() {
		done <- s.Play(context.Background(), entryA, Flags{PlayPhonics: true})
	}()
	<-ld.playing

	s.Close()
	s.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after Close")
	}
	sounds := ld.all()
	require.Len(t, sounds, 1)
	assert.Equal(t, 1, sounds[0].releaseCount())

	res := s.Play(context.Background(), entryA, Flags{PlayPhonics: true, PlayWord: true})
	require.Len(t, res.Failures, 1)
	assert.ErrorIs(t, res.Failures[0], ErrClosed)
	assert.Equal(t, []Step{StepPhonics, StepWord}, res.Steps)
}

func TestPlay_SlowLoadDoesNotBlockOtherCalls(t *testing.T) {
	rec := &recorder{}
	s, _, ld := newTestSequencer(rec)
	gate := make(chan struct{})
	ld.gate["a.mp3"] = gate

	doneA := make(chan Result, 1)
	go func() {
		doneA <- s.Play(context.Background(), entryA, Flags{PlayPhonics: true})
	}()
	select {
	case <-ld.loading:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for A to start loading")
	}

	activeDone := make(chan struct{})
	go func() {
		s.Active()
		close(activeDone)
	}()
	select {
	case <-activeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Active blocked behind a pending load")
	}

	resB := s.Play(context.Background(), entryB, Flags{PlayPhonics: true})
	assert.Empty(t, resB.Failures)

	close(gate)
	select {
	case resA := <-doneA:
		assert.Empty(t, resA.Failures, "an overtaken load is not a failure")
	case <-time.After(2 * time.Second):
		t.Fatal("A never finished after its load was released")
	}

	assert.Equal(t, -1, rec.index("play(a.mp3)"), "overtaken sound must not play: %v", rec.snapshot())
	_, active := s.Active()
	assert.False(t, active)
	for _, snd := range ld.all() {
		assert.Equal(t, 1, snd.releaseCount(), "sound %s released %d times", snd.ref, snd.releaseCount())
	}
}

func TestClose_DuringLoadReleasesLoadedSound(t *testing.T) {
	rec := &recorder{}
	s, _, ld := newTestSequencer(rec)
	gate := make(chan struct{})
	ld.gate["a.mp3"] = gate

	done := make(chan Result, 1)
	go func() {
		done <- s.Play(context.Background(), entryA, Flags{PlayPhonics: true})
	}()
	<-ld.loading

	closed := make(chan struct{})
	go func() {
		s.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked behind a pending load")
	}

	close(gate)
	var res Result
	select {
	case res = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after Close")
	}
	require.Len(t, res.Failures, 1)
	assert.ErrorIs(t, res.Failures[0], ErrClosed)
	assert.Equal(t, -1, rec.index("play(a.mp3)"))
	sounds := ld.all()
	require.Len(t, sounds, 1)
	assert.Equal(t, 1, sounds[0].releaseCount())
	_, active := s.Active()
	assert.False(t, active)
}

func TestPlay_CancelledContextSkipsSteps(t *testing.T) {
	rec := &recorder{}
	s, _, _ := newTestSequencer(rec)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Play(ctx, entryA, Flags{PlayLetterName: true, PlayPhonics: true, PlayWord: true})

	assert.Empty(t, res.Steps)
	assert.Empty(t, rec.snapshot())
}

func TestPlay_EmitsProgress(t *testing.T) {
	rec := &recorder{}
	ch := make(chan progress.Event, 16)
	s, _, _ := newTestSequencer(rec, WithEmitter(&progress.ChanEmitter{Ch: ch}))

	s.Play(context.Background(), alphabet.Entry{Char: 'Q', Phonics: "queen"}, Flags{PlayLetterName: true, PlayPhonics: true})
	close(ch)

	var got []string
	for ev := range ch {
		got = append(got, ev.Step+":"+string(ev.Status))
	}
	assert.Equal(t, []string{"name:running", "name:done", "phonics:skipped"}, got)
}

func TestPlay_Tracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	rec := &recorder{}
	s, sp, _ := newTestSequencer(rec, WithTracer(tp.Tracer("test")))
	sp.err = errEngine

	s.Play(context.Background(), entryA, Flags{PlayLetterName: true, PlayPhonics: true})

	ended := sr.Ended()
	names := make([]string, 0, len(ended))
	for _, span := range ended {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"phonics.step.name", "phonics.step.phonics", "phonics.playback"}, names)

	root := ended[len(ended)-1]
	for _, child := range ended[:len(ended)-1] {
		assert.Equal(t, root.SpanContext().SpanID(), child.Parent().SpanID())
	}
	assert.Len(t, ended[0].Events(), 1, "failed step should record its error")
}

func TestStep_String(t *testing.T) {
	tests := map[Step]string{StepName: "name", StepPhonics: "phonics", StepWord: "word", Step(9): "unknown"}
	for step, want := range tests {
		if got := step.String(); got != want {
			t.Errorf("Step(%d).String() = %q, want %q", int(step), got, want)
		}
	}
}
