// Package config loads the board's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"phonicsboard/internal/layout"
	"phonicsboard/internal/playback"

	"gopkg.in/yaml.v3"
)

// Settings store backends.
const (
	StoreSQLite = "sqlite" // one database file at Database
	StoreFiles  = "files"  // one JSON file per board under SettingsDir
)

// Config represents the application configuration
type Config struct {
	DataDir      string          `yaml:"data_dir"`
	Store        string          `yaml:"store"`
	Database     string          `yaml:"database"`
	SettingsDir  string          `yaml:"settings_dir"`
	Assets       string          `yaml:"assets"`
	Log          LogConfig       `yaml:"log"`
	Speech       SpeechConfig    `yaml:"speech"`
	Audio        AudioConfig     `yaml:"audio"`
	Layout       LayoutConfig    `yaml:"layout"`
	SettingsHold HoldConfig      `yaml:"settings_hold"`
	Telemetry    TelemetryConfig `yaml:"telemetry"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SpeechConfig selects the speech engine and voice. Engine "" detects one,
// "none" disables speech.
type SpeechConfig struct {
	Engine   string  `yaml:"engine"`
	Language string  `yaml:"language"`
	Pitch    float64 `yaml:"pitch"`
	Rate     float64 `yaml:"rate"`
}

// Voice returns the playback voice options.
func (s SpeechConfig) Voice() playback.VoiceOptions {
	return playback.VoiceOptions{Language: s.Language, Pitch: s.Pitch, Rate: s.Rate}
}

// AudioConfig controls phonics sound playback.
type AudioConfig struct {
	Enabled    *bool `yaml:"enabled"`
	SampleRate int   `yaml:"sample_rate"`
}

// IsEnabled reports whether sounds are played; unset means enabled.
func (a AudioConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// ParamsConfig mirrors layout.Params for YAML.
type ParamsConfig struct {
	Margin          int `yaml:"margin"`
	Padding         int `yaml:"padding"`
	VerticalPadding int `yaml:"vertical_padding"`
	MinSize         int `yaml:"min_size"`
	MaxSize         int `yaml:"max_size"`
}

// Params converts to layout.Params.
func (p ParamsConfig) Params() layout.Params {
	return layout.Params{
		Margin:          p.Margin,
		Padding:         p.Padding,
		VerticalPadding: p.VerticalPadding,
		MinSize:         p.MinSize,
		MaxSize:         p.MaxSize,
	}
}

func (p *ParamsConfig) applyDefaults(d layout.Params) {
	if p.Margin == 0 {
		p.Margin = d.Margin
	}
	if p.Padding == 0 {
		p.Padding = d.Padding
	}
	if p.VerticalPadding == 0 {
		p.VerticalPadding = d.VerticalPadding
	}
	if p.MinSize == 0 {
		p.MinSize = d.MinSize
	}
	if p.MaxSize == 0 {
		p.MaxSize = d.MaxSize
	}
}

// CellConfig is the assumed pixel size of a terminal cell.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Metrics converts to layout.CellMetrics.
func (c CellConfig) Metrics() layout.CellMetrics {
	return layout.CellMetrics{Width: c.Width, Height: c.Height}
}

// LayoutConfig holds the sizing constants of both themes.
type LayoutConfig struct {
	Standard ParamsConfig `yaml:"standard"`
	Retro    ParamsConfig `yaml:"retro"`
	Cell     CellConfig   `yaml:"cell"`
}

// HoldConfig configures the hold gesture that opens settings.
type HoldConfig struct {
	Counts       []int         `yaml:"counts"`
	Threshold    time.Duration `yaml:"threshold"`
	MouseTouches int           `yaml:"mouse_touches"`
}

// TelemetryConfig configures OTLP export. An empty endpoint defers to
// OTEL_EXPORTER_OTLP_ENDPOINT.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    *bool  `yaml:"insecure"`
}

// IsInsecure reports whether plain HTTP is used; unset means insecure, which
// suits a local collector.
func (t TelemetryConfig) IsInsecure() bool {
	return t.Insecure == nil || *t.Insecure
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config at path. An empty path resolves the standard
// location; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Path returns the config file location: PHONICS_CONFIG, then
// $XDG_CONFIG_HOME/phonics/config.yaml, then ~/.config/phonics/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("PHONICS_CONFIG"); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "phonics", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "phonics", "config.yaml"), nil
}

// defaultDataDir is PHONICS_HOME or ~/.phonics.
func defaultDataDir() string {
	if h := os.Getenv("PHONICS_HOME"); h != "" {
		return h
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".phonics"
	}
	return filepath.Join(homeDir, ".phonics")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if h := os.Getenv("PHONICS_HOME"); h != "" {
		c.DataDir = h
	}
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	c.DataDir = expandHome(c.DataDir)
	if c.Store == "" {
		c.Store = StoreSQLite
	}
	if c.Database == "" {
		c.Database = filepath.Join(c.DataDir, "phonics.db")
	}
	c.Database = expandHome(c.Database)
	if c.SettingsDir == "" {
		c.SettingsDir = filepath.Join(c.DataDir, "settings")
	}
	c.SettingsDir = expandHome(c.SettingsDir)
	if c.Assets == "" {
		c.Assets = filepath.Join(c.DataDir, "sounds")
	}
	c.Assets = expandHome(c.Assets)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "logs", "phonics.log")
	}
	c.Log.File = expandHome(c.Log.File)

	if c.Speech.Language == "" {
		c.Speech.Language = playback.DefaultVoice.Language
	}
	if c.Speech.Pitch == 0 {
		c.Speech.Pitch = playback.DefaultVoice.Pitch
	}
	if c.Speech.Rate == 0 {
		c.Speech.Rate = playback.DefaultVoice.Rate
	}

	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 44100
	}

	c.Layout.Standard.applyDefaults(layout.StandardParams)
	c.Layout.Retro.applyDefaults(layout.RetroParams)
	if c.Layout.Cell.Width == 0 {
		c.Layout.Cell.Width = layout.DefaultCellMetrics.Width
	}
	if c.Layout.Cell.Height == 0 {
		c.Layout.Cell.Height = layout.DefaultCellMetrics.Height
	}

	if len(c.SettingsHold.Counts) == 0 {
		c.SettingsHold.Counts = []int{3, 4}
	}
	if c.SettingsHold.Threshold == 0 {
		c.SettingsHold.Threshold = 2 * time.Second
	}
	if c.SettingsHold.MouseTouches == 0 {
		c.SettingsHold.MouseTouches = 3
	}

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "phonics"
	}
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
}
