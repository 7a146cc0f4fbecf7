package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/audio"
	"phonicsboard/internal/config"
	"phonicsboard/internal/logging"
	"phonicsboard/internal/playback"
	"phonicsboard/internal/progress"
	"phonicsboard/internal/settings"
	"phonicsboard/internal/speech"
	"phonicsboard/internal/telemetry"
	"phonicsboard/internal/ui"
)

// progressBuffer is how many step events may queue before the status line
// starts missing them.
const progressBuffer = 32

func runBoard(cmd *cobra.Command, flags *globalFlags, variant settings.Variant) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx, flags, variant)
	if err != nil {
		return err
	}
	defer e.Close()

	provider, err := telemetry.NewProvider(ctx, telemetry.Options{
		Endpoint:    e.cfg.Telemetry.Endpoint,
		ServiceName: e.cfg.Telemetry.ServiceName,
		Insecure:    e.cfg.Telemetry.IsInsecure(),
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			e.logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	events := make(chan progress.Event, progressBuffer)
	seq := playback.New(
		newSpeaker(e.cfg.Speech),
		newLoader(e.cfg.Audio),
		alphabet.SoundDir{Dir: e.cfg.Assets},
		playback.WithVoice(e.cfg.Speech.Voice()),
		playback.WithLogger(logging.Component("playback")),
		playback.WithTracer(provider.Tracer()),
		playback.WithEmitter(&progress.ChanEmitter{Ch: events}),
	)
	defer seq.Close()

	model := ui.NewAppModel(ui.Options{
		Context:  ctx,
		Theme:    themeFor(variant, e.cfg),
		Settings: e.settings,
		Player:   seq,
		Cells:    e.cfg.Layout.Cell.Metrics(),
		Hold: ui.HoldOptions{
			Counts:       e.cfg.SettingsHold.Counts,
			Threshold:    e.cfg.SettingsHold.Threshold,
			MouseTouches: e.cfg.SettingsHold.MouseTouches,
		},
		Progress: events,
		Logger:   logging.Component("ui"),
	})
	// A signal ends the program without a QuitMsg; stop speech and timers
	// before the sequencer is closed.
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// themeFor applies the configured sizing constants to the variant's theme.
func themeFor(variant settings.Variant, cfg *config.Config) ui.Theme {
	if variant == settings.Retro {
		t := ui.RetroTheme()
		t.Params = cfg.Layout.Retro.Params()
		return t
	}
	t := ui.StandardTheme()
	t.Params = cfg.Layout.Standard.Params()
	return t
}

// newSpeaker picks the configured speech engine. A missing engine is not
// fatal; the board runs silently for the speech steps.
func newSpeaker(cfg config.SpeechConfig) playback.Speaker {
	logger := logging.Component("speech")
	if cfg.Engine == "none" {
		return speech.Noop{Logger: logger}
	}
	s, err := speech.NewCommandSpeaker(cfg.Engine, logger)
	if err != nil {
		logger.Warn("speech unavailable", "engine", cfg.Engine, "error", err)
		return speech.Noop{Logger: logger}
	}
	logger.Info("speech engine", "engine", s.Engine())
	return s
}

// newLoader returns nil when sounds are disabled, which turns the phonics
// step into a no-op.
func newLoader(cfg config.AudioConfig) playback.Loader {
	if !cfg.IsEnabled() {
		return nil
	}
	return audio.NewLoader(cfg.SampleRate)
}
