package ipa

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSymbol matches any ParseError for an unknown code point
	ErrUnsupportedSymbol = errors.New("unsupported symbol")
	// ErrPalatalizedVowel matches any ParseError for a ʲ after a vowel
	ErrPalatalizedVowel = errors.New("vowel cannot be palatalized")
)

// ErrorKind classifies a ParseError
type ErrorKind uint8

const (
	UnsupportedSymbol ErrorKind = iota + 1
	PalatalizedVowel
)

// ParseError reports the first offending symbol of a transcription.
// Position is the index of the offending code point in the input.
type ParseError struct {
	Kind     ErrorKind
	Symbol   rune
	Vowel    VowelID
	Position int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnsupportedSymbol:
		return fmt.Sprintf("unsupported symbol %q (U+%04X) at position %d", e.Symbol, e.Symbol, e.Position)
	case PalatalizedVowel:
		return fmt.Sprintf("vowel %q (%s) cannot be palatalized at position %d", e.Symbol, e.Vowel, e.Position)
	default:
		return "invalid transcription"
	}
}

// Is lets errors.Is match a ParseError against the package sentinels
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrUnsupportedSymbol:
		return e.Kind == UnsupportedSymbol
	case ErrPalatalizedVowel:
		return e.Kind == PalatalizedVowel
	}
	return false
}

// Parse converts a transcription into sounds. Parsing stops at the first
// error and no partial result is returned.
//
// For each base symbol the palatalization mark is looked for directly after
// it, and the length mark after the palatalization mark if there is one,
// otherwise directly after the symbol.
func Parse(input string) ([]Sound, error) {
	runes := []rune(input)
	sounds := make([]Sound, 0, len(runes))

	for i, r := range runes {
		palatalized := peek(runes, i+1) == PalatalizationMark
		var long bool
		if palatalized {
			long = peek(runes, i+2) == LengthMark
		} else {
			long = peek(runes, i+1) == LengthMark
		}

		switch r {
		case PalatalizationMark, LengthMark:
			// consumed by the lookahead of the preceding symbol
			continue
		case Separator:
			sounds = append(sounds, Space())
			continue
		}

		if v, ok := vowelSymbols[r]; ok {
			if palatalized {
				return nil, &ParseError{Kind: PalatalizedVowel, Symbol: r, Vowel: v, Position: i}
			}
			sounds = append(sounds, NewVowel(v, long))
			continue
		}

		if c, ok := consonantSymbols[r]; ok {
			if c == VoicelessAlveolopalatalFricative {
				palatalized = true
			}
			sounds = append(sounds, NewConsonant(c, long, palatalized))
			continue
		}

		return nil, &ParseError{Kind: UnsupportedSymbol, Symbol: r, Position: i}
	}

	return sounds, nil
}

// peek returns the rune at i, or 0 past the end of the input
func peek(runes []rune, i int) rune {
	if i >= len(runes) {
		return 0
	}
	return runes[i]
}
