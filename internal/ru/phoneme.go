package ru

import "fmt"

// Vowel is a vowel letter of the target orthography
type Vowel uint8

const (
	A Vowel = iota
	E
	I
	O
	U
)

// Consonant is a consonant letter that may carry a palatalization flag
type Consonant uint8

const (
	P Consonant = iota
	B
	F
	V
	K
	G
	T
	D
	Sh // hushing sibilant: ш, or щ when palatalized
	Zh
	S
	Z
	L
	M
	N
	R
	H
	Ts
)

// Palatal is a consonant that is always palatalized and has no flag
type Palatal uint8

const (
	J  Palatal = iota // glide: й, ъ or nothing
	Ch                // affricate: ч
)

// Kind discriminates the Phoneme variants
type Kind uint8

const (
	KindVowel Kind = iota
	KindConsonant
	KindPalatal
	KindSpace
)

// Phoneme is one unit of the orthographic sequence
type Phoneme struct {
	Kind        Kind
	Vowel       Vowel
	Consonant   Consonant
	Palatal     Palatal
	Palatalized bool
}

// Seq is an ordered phoneme sequence
type Seq []Phoneme

// NewVowel returns a vowel phoneme
func NewVowel(v Vowel) Phoneme {
	return Phoneme{Kind: KindVowel, Vowel: v}
}

// NewConsonant returns a consonant phoneme
func NewConsonant(c Consonant, palatalized bool) Phoneme {
	return Phoneme{Kind: KindConsonant, Consonant: c, Palatalized: palatalized}
}

// NewPalatal returns an always-palatalized consonant phoneme
func NewPalatal(p Palatal) Phoneme {
	return Phoneme{Kind: KindPalatal, Palatal: p}
}

// SpaceUnit returns the separator phoneme
func SpaceUnit() Phoneme {
	return Phoneme{Kind: KindSpace}
}

// IsPalatalized reports whether the unit is a palatalized consonant
func (p Phoneme) IsPalatalized() bool {
	switch p.Kind {
	case KindConsonant:
		return p.Palatalized
	case KindPalatal:
		return true
	}
	return false
}

// IsConsonant reports whether the unit is any kind of consonant
func (p Phoneme) IsConsonant() bool {
	return p.Kind == KindConsonant || p.Kind == KindPalatal
}

// spellsPalatalization reports whether the unit marks its palatalization in
// its own letter, so that a following vowel stays plain.
func (p Phoneme) spellsPalatalization() bool {
	switch p.Kind {
	case KindConsonant:
		return p.Consonant == Sh && p.Palatalized
	case KindPalatal:
		return p.Palatal == Ch
	}
	return false
}

var vowelNames = [...]string{A: "a", E: "e", I: "i", O: "o", U: "u"}

var consonantNames = [...]string{
	P: "p", B: "b", F: "f", V: "v", K: "k", G: "g", T: "t", D: "d",
	Sh: "sh", Zh: "zh", S: "s", Z: "z", L: "l", M: "m", N: "n", R: "r",
	H: "h", Ts: "ts",
}

var palatalNames = [...]string{J: "j", Ch: "ch"}

func (p Phoneme) String() string {
	switch p.Kind {
	case KindVowel:
		return vowelNames[p.Vowel]
	case KindConsonant:
		if p.Palatalized {
			return consonantNames[p.Consonant] + "'"
		}
		return consonantNames[p.Consonant]
	case KindPalatal:
		return palatalNames[p.Palatal]
	case KindSpace:
		return "_"
	default:
		panic(fmt.Sprintf("ru: unknown phoneme kind %d", p.Kind))
	}
}
