package playback

import "context"

// VoiceOptions tune the speech engine for one utterance.
type VoiceOptions struct {
	Language string
	Pitch    float64 // multiplier, 1.0 is the engine default
	Rate     float64 // multiplier, 1.0 is the engine default
}

// DefaultVoice is slightly slower than normal speech, for young listeners.
var DefaultVoice = VoiceOptions{Language: "en-US", Pitch: 1.0, Rate: 0.8}

// Speaker synthesizes speech. Speak blocks until the utterance is done,
// stopped or failed; done and stopped both return nil.
type Speaker interface {
	Speak(ctx context.Context, text string, opts VoiceOptions) error
}

// Sound is a loaded, playable audio resource.
type Sound interface {
	// Play blocks until the sound finishes, is stopped or ctx is done.
	// Being stopped is not an error.
	Play(ctx context.Context) error
	// Stop interrupts playback. Safe to call at any time.
	Stop()
	// Release frees the underlying audio handle.
	Release() error
}

// Loader creates Sounds from catalog resource references.
type Loader interface {
	Load(ctx context.Context, ref string) (Sound, error)
}

// SoundCatalog resolves the phonics sound of a letter. Letters without a
// sound report false.
type SoundCatalog interface {
	SoundFor(letter string) (string, bool)
}

// Flags selects which steps of the sequence run.
type Flags struct {
	PlayLetterName bool
	PlayPhonics    bool
	PlayWord       bool
}
