package translit

import (
	"fmt"

	"codeberg.org/snonux/ruphon/internal/ipa"
	"codeberg.org/snonux/ruphon/internal/ru"
)

// Transliterate parses input and renders it as Cyrillic. The only errors are
// *ipa.ParseError values.
func Transliterate(input string) (string, error) {
	sounds, err := ipa.Parse(input)
	if err != nil {
		return "", err
	}
	return ru.Render(ru.Lower(sounds)), nil
}

// Step is one rendered unit of a transcription
type Step struct {
	Phoneme  ru.Phoneme
	Context  ru.Context
	Grapheme string
}

func (s Step) String() string {
	var flags string
	if s.Context.PrevPalatalized {
		flags += " prev-soft"
	}
	if s.Context.PrevIsConsonant {
		flags += " prev-cons"
	}
	if s.Context.PrevSuppressesIotation {
		flags += " prev-self-marked"
	}
	if s.Context.NextIsVowel {
		flags += " next-vowel"
	}
	return fmt.Sprintf("%-4s -> %q%s", s.Phoneme, s.Grapheme, flags)
}

// Explain returns the rendering decision made for every unit of input
func Explain(input string) ([]Step, error) {
	sounds, err := ipa.Parse(input)
	if err != nil {
		return nil, err
	}

	seq := ru.Lower(sounds)
	steps := make([]Step, 0, len(seq))
	for i, p := range seq {
		ctx := ru.ContextAt(seq, i)
		steps = append(steps, Step{Phoneme: p, Context: ctx, Grapheme: ru.Spell(p, ctx)})
	}
	return steps, nil
}
