package ui

import "strings"

// Letters of the Mathematical Script block that live in Letterlike Symbols
// instead of at their computed code point.
var scriptExceptions = map[rune]rune{
	'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ',
	'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
	'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
}

const (
	scriptUpperBase = 0x1D49C
	scriptLowerBase = 0x1D4B6
)

// Cursive maps ASCII letters in s to their script forms. Other runes pass
// through.
func Cursive(s string) string {
	return strings.Map(func(r rune) rune {
		if x, ok := scriptExceptions[r]; ok {
			return x
		}
		switch {
		case r >= 'A' && r <= 'Z':
			return scriptUpperBase + (r - 'A')
		case r >= 'a' && r <= 'z':
			return scriptLowerBase + (r - 'a')
		}
		return r
	}, s)
}
