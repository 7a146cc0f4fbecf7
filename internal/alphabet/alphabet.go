// Package alphabet holds the static letter catalog shown on the board.
package alphabet

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry is one letter of the catalog: its display character, the example
// word spoken for it and the spoken form of the letter sound.
type Entry struct {
	Char    rune
	Phonics string
	Speech  string
}

// Letter returns the entry's character as an uppercase string ("A").
func (e Entry) Letter() string {
	return string(e.Char)
}

// entries is ordered A→Z; everything that filters the board iterates it.
var entries = [...]Entry{
	{'A', "apple", "Ay"},
	{'B', "ball", "Bee"},
	{'C', "cat", "See"},
	{'D', "dog", "Dee"},
	{'E', "egg", "Ee"},
	{'F', "fish", "Ef"},
	{'G', "goat", "Gee"},
	{'H', "hat", "Aitch"},
	{'I', "igloo", "Eye"},
	{'J', "jam", "Jay"},
	{'K', "kite", "Kay"},
	{'L', "lion", "El"},
	{'M', "moon", "Em"},
	{'N', "nest", "En"},
	{'O', "octopus", "Oh"},
	{'P', "pig", "Pee"},
	{'Q', "queen", "Cue"},
	{'R', "rabbit", "Ar"},
	{'S', "sun", "Es"},
	{'T', "tiger", "Tee"},
	{'U', "umbrella", "You"},
	{'V', "van", "Vee"},
	{'W', "web", "Double-you"},
	{'X', "fox", "Ex"},
	{'Y', "yo-yo", "Why"},
	{'Z', "zebra", "Zee"},
}

// All returns a copy of the catalog in alphabet order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries[:])
	return out
}

// Letters returns the 26 catalog letters as strings, A→Z.
func Letters() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Letter()
	}
	return out
}

// Lookup finds the entry for a letter, ignoring case.
func Lookup(letter string) (Entry, bool) {
	if len(letter) != 1 {
		return Entry{}, false
	}
	c := rune(strings.ToUpper(letter)[0])
	if c < 'A' || c > 'Z' {
		return Entry{}, false
	}
	return entries[c-'A'], true
}

// soundExtensions are tried in order when resolving a letter's sound file.
var soundExtensions = []string{".mp3", ".ogg", ".wav"}

// SoundDir maps letters to audio files named after the lowercase letter
// (a.mp3, b.ogg, ...) inside a directory. Letters without a file have no
// sound; that is not an error.
type SoundDir struct {
	Dir string
}

// SoundFor implements playback.SoundCatalog.
func (d SoundDir) SoundFor(letter string) (string, bool) {
	if d.Dir == "" || len(letter) != 1 {
		return "", false
	}
	base := strings.ToLower(letter)
	for _, ext := range soundExtensions {
		p := filepath.Join(d.Dir, base+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// SoundMap is a fixed letter→resource mapping, mostly useful in tests.
type SoundMap map[string]string

// SoundFor implements playback.SoundCatalog.
func (m SoundMap) SoundFor(letter string) (string, bool) {
	ref, ok := m[strings.ToUpper(letter)]
	return ref, ok && ref != ""
}
