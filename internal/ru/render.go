package ru

import (
	"fmt"
	"strings"
)

const (
	softSign = "ь"
	hardSign = "ъ"
)

var plainVowels = [...]string{A: "а", E: "э", I: "ы", O: "о", U: "у"}

var iotatedVowels = [...]string{A: "я", E: "е", I: "и", O: "ё", U: "ю"}

var consonantGraphemes = [...]string{
	P: "п", B: "б", F: "ф", V: "в", K: "к", G: "г", T: "т", D: "д",
	Sh: "ш", Zh: "ж", S: "с", Z: "з", L: "л", M: "м", N: "н", R: "р",
	H: "х", Ts: "ц",
}

// Context holds the neighbour predicates of one position
type Context struct {
	PrevPalatalized        bool
	NextIsVowel            bool
	PrevIsConsonant        bool
	PrevSuppressesIotation bool
}

// ContextAt computes the predicates for position i of seq
func ContextAt(seq Seq, i int) Context {
	var ctx Context
	if i > 0 {
		prev := seq[i-1]
		ctx.PrevPalatalized = prev.IsPalatalized()
		ctx.PrevIsConsonant = prev.IsConsonant()
		ctx.PrevSuppressesIotation = prev.spellsPalatalization()
	}
	if i+1 < len(seq) {
		ctx.NextIsVowel = seq[i+1].Kind == KindVowel
	}
	return ctx
}

// Spell returns the graphemes for p in the given context. It may be empty.
func Spell(p Phoneme, ctx Context) string {
	switch p.Kind {
	case KindVowel:
		if ctx.PrevPalatalized && !ctx.PrevSuppressesIotation {
			return iotatedVowels[p.Vowel]
		}
		return plainVowels[p.Vowel]
	case KindConsonant:
		if p.Consonant == Sh {
			if p.Palatalized {
				return "щ"
			}
			return "ш"
		}
		if p.Palatalized && !ctx.NextIsVowel {
			return consonantGraphemes[p.Consonant] + softSign
		}
		return consonantGraphemes[p.Consonant]
	case KindPalatal:
		switch p.Palatal {
		case J:
			if ctx.NextIsVowel && ctx.PrevIsConsonant {
				return hardSign
			}
			if !ctx.NextIsVowel {
				return "й"
			}
			return ""
		case Ch:
			return "ч"
		default:
			panic(fmt.Sprintf("ru: unknown palatal consonant %d", p.Palatal))
		}
	case KindSpace:
		return " "
	default:
		panic(fmt.Sprintf("ru: unknown phoneme kind %d", p.Kind))
	}
}

// Render spells the whole sequence. seq is not modified.
func Render(seq Seq) string {
	var b strings.Builder
	for i, p := range seq {
		b.WriteString(Spell(p, ContextAt(seq, i)))
	}
	return b.String()
}

func (s Seq) String() string {
	return Render(s)
}
