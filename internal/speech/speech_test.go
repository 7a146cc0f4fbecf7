package speech

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"phonicsboard/internal/playback"
)

func TestEspeakArgs(t *testing.T) {
	got := espeakArgs("a", playback.DefaultVoice)
	want := []string{"-p", "50", "-s", "140", "-v", "en-us", "--", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("espeakArgs = %v, want %v", got, want)
	}
}

func TestSayArgs(t *testing.T) {
	got := sayArgs("apple", playback.VoiceOptions{Rate: 2})
	want := []string{"-r", "350", "--", "apple"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sayArgs = %v, want %v", got, want)
	}
}

func TestSpdArgs(t *testing.T) {
	got := spdArgs("apple", playback.VoiceOptions{Language: "en-US", Pitch: 1.0, Rate: 0.8})
	want := []string{"--wait", "-r", "-20", "-p", "0", "-l", "en", "apple"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spdArgs = %v, want %v", got, want)
	}
}

func TestScaleAndClamp(t *testing.T) {
	if got := scale(175, 0); got != 175 {
		t.Errorf("scale with zero multiplier = %d, want base", got)
	}
	if got := clamp(500, 0, 99); got != 99 {
		t.Errorf("clamp(500) = %d, want 99", got)
	}
	if got := clamp(-3, 0, 99); got != 0 {
		t.Errorf("clamp(-3) = %d, want 0", got)
	}
}

func stubLookPath(t *testing.T, installed map[string]string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if p, ok := installed[name]; ok {
			return p, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestNewCommandSpeaker_Detection(t *testing.T) {
	stubLookPath(t, map[string]string{"say": "/usr/bin/say", "spd-say": "/usr/bin/spd-say"})

	s, err := NewCommandSpeaker("", nil)
	if err != nil {
		t.Fatalf("NewCommandSpeaker: %v", err)
	}
	if s.Engine() != "say" {
		t.Errorf("expected first installed engine 'say', got %q", s.Engine())
	}

	s, err = NewCommandSpeaker("spd-say", nil)
	if err != nil {
		t.Fatalf("NewCommandSpeaker(spd-say): %v", err)
	}
	if s.Engine() != "spd-say" {
		t.Errorf("expected spd-say, got %q", s.Engine())
	}

	if _, err := NewCommandSpeaker("espeak-ng", nil); !errors.Is(err, ErrNoEngine) {
		t.Errorf("expected ErrNoEngine for missing engine, got %v", err)
	}
}

func TestNewCommandSpeaker_NoneInstalled(t *testing.T) {
	stubLookPath(t, map[string]string{})
	if _, err := NewCommandSpeaker("", nil); !errors.Is(err, ErrNoEngine) {
		t.Errorf("expected ErrNoEngine, got %v", err)
	}
}

func TestCommandSpeaker_Speak(t *testing.T) {
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true(1) not available")
	}
	falsePath, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false(1) not available")
	}
	noArgs := Engine{Name: "test", Args: func(string, playback.VoiceOptions) []string { return nil }}

	ok := &CommandSpeaker{engine: noArgs, path: truePath, logger: discardLogger()}
	if err := ok.Speak(context.Background(), "a", playback.DefaultVoice); err != nil {
		t.Errorf("Speak with successful engine: %v", err)
	}

	bad := &CommandSpeaker{engine: noArgs, path: falsePath, logger: discardLogger()}
	if err := bad.Speak(context.Background(), "a", playback.DefaultVoice); err == nil {
		t.Error("Speak with failing engine: expected error")
	}
	if err := bad.Speak(context.Background(), "   ", playback.DefaultVoice); err != nil {
		t.Errorf("Speak with blank text should be a no-op, got %v", err)
	}
}

func TestNoop(t *testing.T) {
	if err := (Noop{}).Speak(context.Background(), "a", playback.DefaultVoice); err != nil {
		t.Errorf("Noop.Speak: %v", err)
	}
}
