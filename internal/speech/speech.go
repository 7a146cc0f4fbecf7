// Package speech implements playback.Speaker on top of command-line
// text-to-speech engines.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"phonicsboard/internal/playback"
)

// ErrNoEngine is returned when no supported engine is installed.
var ErrNoEngine = errors.New("no text-to-speech engine found")

// Engine describes how to invoke one TTS program.
type Engine struct {
	Name string
	// Args builds the argument list for one utterance.
	Args func(text string, opts playback.VoiceOptions) []string
}

// Known engines in detection order.
var Engines = []Engine{
	{Name: "espeak-ng", Args: espeakArgs},
	{Name: "espeak", Args: espeakArgs},
	{Name: "say", Args: sayArgs},
	{Name: "spd-say", Args: spdArgs},
}

// espeak: pitch 0-99 (50 default), speed in words per minute (175 default).
func espeakArgs(text string, opts playback.VoiceOptions) []string {
	args := []string{
		"-p", strconv.Itoa(clamp(scale(50, opts.Pitch), 0, 99)),
		"-s", strconv.Itoa(clamp(scale(175, opts.Rate), 80, 450)),
	}
	if v := espeakVoice(opts.Language); v != "" {
		args = append(args, "-v", v)
	}
	return append(args, "--", text)
}

func espeakVoice(lang string) string {
	return strings.ToLower(lang)
}

// say (macOS): rate in words per minute (~175 default), no pitch flag.
func sayArgs(text string, opts playback.VoiceOptions) []string {
	return []string{"-r", strconv.Itoa(clamp(scale(175, opts.Rate), 60, 500)), "--", text}
}

// spd-say: rate and pitch in -100..100 around 0.
func spdArgs(text string, opts playback.VoiceOptions) []string {
	args := []string{
		"--wait",
		"-r", strconv.Itoa(clamp(offset(opts.Rate), -100, 100)),
		"-p", strconv.Itoa(clamp(offset(opts.Pitch), -100, 100)),
	}
	if opts.Language != "" {
		lang, _, _ := strings.Cut(opts.Language, "-")
		args = append(args, "-l", strings.ToLower(lang))
	}
	return append(args, text)
}

func scale(base int, mult float64) int {
	if mult <= 0 {
		mult = 1
	}
	return int(math.Round(float64(base) * mult))
}

func offset(mult float64) int {
	if mult <= 0 {
		mult = 1
	}
	return int(math.Round((mult - 1) * 100))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// CommandSpeaker speaks through an external engine process, one process
// per utterance. Speak returns when the process exits.
type CommandSpeaker struct {
	engine Engine
	path   string
	logger *slog.Logger
}

// Ensure CommandSpeaker implements playback.Speaker.
var _ playback.Speaker = (*CommandSpeaker)(nil)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// NewCommandSpeaker finds the named engine, or the first installed known
// engine when name is empty.
func NewCommandSpeaker(name string, logger *slog.Logger) (*CommandSpeaker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, e := range Engines {
		if name != "" && e.Name != name {
			continue
		}
		p, err := lookPath(e.Name)
		if err != nil {
			continue
		}
		return &CommandSpeaker{engine: e, path: p, logger: logger}, nil
	}
	if name != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoEngine, name)
	}
	return nil, ErrNoEngine
}

// Engine returns the engine name in use.
func (c *CommandSpeaker) Engine() string {
	return c.engine.Name
}

// Speak implements playback.Speaker.
func (c *CommandSpeaker) Speak(ctx context.Context, text string, opts playback.VoiceOptions) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cmd := exec.CommandContext(ctx, c.path, c.engine.Args(text, opts)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	c.logger.Debug("speak", "engine", c.engine.Name, "text", text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			// Killed on shutdown; the utterance counts as stopped.
			return nil
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", c.engine.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", c.engine.Name, err)
	}
	return nil
}

// Noop logs utterances instead of speaking them.
type Noop struct {
	Logger *slog.Logger
}

// Speak implements playback.Speaker.
func (n Noop) Speak(ctx context.Context, text string, opts playback.VoiceOptions) error {
	l := n.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Debug("speech disabled, would say", "text", text)
	return nil
}
