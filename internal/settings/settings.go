// Package settings holds the user's board preferences and persists them
// through a key-value store.
package settings

import (
	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/jsonutil"
	"phonicsboard/internal/playback"
)

// Variant selects which board a settings record belongs to. Each variant
// persists under its own key.
type Variant int

const (
	Standard Variant = iota
	Retro
)

// Key returns the storage key for the variant's record.
func (v Variant) Key() string {
	if v == Retro {
		return "phonics_settings_retro_v1"
	}
	return "phonics_settings_v1"
}

func (v Variant) String() string {
	if v == Retro {
		return "retro"
	}
	return "standard"
}

// Settings is one variant's persisted preference record.
type Settings struct {
	ShowStandard    bool            `json:"showStandard"`
	ShowCursive     bool            `json:"showCursive"`
	ShowUppercase   bool            `json:"showUppercase"`
	ShowLowercase   bool            `json:"showLowercase"`
	PlayPhonics     bool            `json:"playPhonics"`
	PlayLetterName  bool            `json:"playLetterName"`
	PlayWord        bool            `json:"playWord"`
	UseMinimalStyle bool            `json:"useMinimalStyle"`
	EnabledLetters  map[string]bool `json:"enabledLetters"`
}

// Defaults returns a fresh record with every letter enabled, all display
// styles on and only the phonics sound playing.
func Defaults() Settings {
	enabled := make(map[string]bool, 26)
	for _, l := range alphabet.Letters() {
		enabled[l] = true
	}
	return Settings{
		ShowStandard:   true,
		ShowCursive:    true,
		ShowUppercase:  true,
		ShowLowercase:  true,
		PlayPhonics:    true,
		EnabledLetters: enabled,
	}
}

// Decode merges a stored record over the defaults. Fields and letters the
// record does not mention keep their default value. Blank input yields the
// defaults.
func Decode(data []byte) (Settings, error) {
	s := Defaults()
	if jsonutil.IsBlank(data) {
		return s, nil
	}
	if err := jsonutil.UnmarshalWithContext(data, &s, "decode settings"); err != nil {
		return Defaults(), err
	}
	// A stored "enabledLetters": null replaces the map; restore it.
	if s.EnabledLetters == nil {
		s.EnabledLetters = Defaults().EnabledLetters
	}
	return s, nil
}

// Encode serialises s for storage.
func Encode(s Settings) ([]byte, error) {
	return jsonutil.MarshalWithContext(s, "encode settings")
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	c := s
	c.EnabledLetters = make(map[string]bool, len(s.EnabledLetters))
	for k, v := range s.EnabledLetters {
		c.EnabledLetters[k] = v
	}
	return c
}

// Enabled reports whether letter is shown on the board. Letters absent from
// the set count as enabled.
func (s Settings) Enabled(letter string) bool {
	v, ok := s.EnabledLetters[letter]
	return !ok || v
}

// Flags returns the playback mode flags.
func (s Settings) Flags() playback.Flags {
	return playback.Flags{
		PlayLetterName: s.PlayLetterName,
		PlayPhonics:    s.PlayPhonics,
		PlayWord:       s.PlayWord,
	}
}

// VisibleEntries filters catalog down to the enabled letters, keeping the
// catalog's A→Z order.
func (s Settings) VisibleEntries(catalog []alphabet.Entry) []alphabet.Entry {
	out := make([]alphabet.Entry, 0, len(catalog))
	for _, e := range catalog {
		if s.Enabled(e.Letter()) {
			out = append(out, e)
		}
	}
	return out
}
