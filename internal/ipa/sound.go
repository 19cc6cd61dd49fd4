package ipa

import "fmt"

// VowelID identifies a vowel quality in the transcription
type VowelID uint8

const (
	CloseBackRounded VowelID = iota
	CloseCentralRounded
	CloseMidFrontRounded
	CloseMidCentralRounded
	MidCentral
	NearOpenFrontUnrounded
	OpenBackUnrounded
	OpenFrontUnrounded
	OpenMidBackUnrounded
	NearOpenCentral
	CloseMidFrontUnrounded
	OpenMidFrontUnrounded
	CloseFrontUnrounded
	NearCloseFrontUnrounded
	CloseCentralUnrounded
	CloseMidBackRounded
)

// ConsonantID identifies a consonant in the transcription
type ConsonantID uint8

const (
	VoicedBilabialNasal ConsonantID = iota
	VoicedAlveolarNasal
	VoicelessBilabialPlosive
	VoicedBilabialPlosive
	VoicelessAlveolarPlosive
	VoicedAlveolarPlosive
	VoicelessVelarPlosive
	VoicedVelarPlosive
	VoicelessLabiodentalFricative
	VoicedLabiodentalFricative
	VoicelessAlveolarFricative
	VoicedAlveolarFricative
	VoicelessPostalveolarFricative
	VoicelessAlveolopalatalFricative
	VoicedPostalveolarFricative
	VoicelessVelarFricative
	VoicelessGlottalFricative
	VoicelessAlveolarAffricate
	VoicelessAlveolopalatalAffricate
	AlveolarLateral
	AlveolarTrill
	VoicedPalatalApproximant
)

const (
	// PalatalizationMark marks the preceding consonant as palatalized
	PalatalizationMark = 'ʲ'
	// LengthMark doubles the duration of the preceding sound
	LengthMark = 'ː'
	// Separator splits words
	Separator = ' '
)

type vowelInfo struct {
	name   string
	symbol rune
}

type consonantInfo struct {
	name   string
	symbol rune
}

var vowels = [...]vowelInfo{
	CloseBackRounded:        {"close back rounded", 'u'},
	CloseCentralRounded:     {"close central rounded", 'ʉ'},
	CloseMidFrontRounded:    {"close-mid front rounded", 'ø'},
	CloseMidCentralRounded:  {"close-mid central rounded", 'ɵ'},
	MidCentral:              {"mid central", 'ə'},
	NearOpenFrontUnrounded:  {"near-open front unrounded", 'æ'},
	OpenBackUnrounded:       {"open back unrounded", 'ɑ'},
	OpenFrontUnrounded:      {"open front unrounded", 'a'},
	OpenMidBackUnrounded:    {"open-mid back unrounded", 'ʌ'},
	NearOpenCentral:         {"near-open central", 'ɐ'},
	CloseMidFrontUnrounded:  {"close-mid front unrounded", 'e'},
	OpenMidFrontUnrounded:   {"open-mid front unrounded", 'ɛ'},
	CloseFrontUnrounded:     {"close front unrounded", 'i'},
	NearCloseFrontUnrounded: {"near-close front unrounded", 'ɪ'},
	CloseCentralUnrounded:   {"close central unrounded", 'ɨ'},
	CloseMidBackRounded:     {"close-mid back rounded", 'o'},
}

var consonants = [...]consonantInfo{
	VoicedBilabialNasal:              {"voiced bilabial nasal", 'm'},
	VoicedAlveolarNasal:              {"voiced alveolar nasal", 'n'},
	VoicelessBilabialPlosive:         {"voiceless bilabial plosive", 'p'},
	VoicedBilabialPlosive:            {"voiced bilabial plosive", 'b'},
	VoicelessAlveolarPlosive:         {"voiceless alveolar plosive", 't'},
	VoicedAlveolarPlosive:            {"voiced alveolar plosive", 'd'},
	VoicelessVelarPlosive:            {"voiceless velar plosive", 'k'},
	VoicedVelarPlosive:               {"voiced velar plosive", 'g'},
	VoicelessLabiodentalFricative:    {"voiceless labiodental fricative", 'f'},
	VoicedLabiodentalFricative:       {"voiced labiodental fricative", 'v'},
	VoicelessAlveolarFricative:       {"voiceless alveolar fricative", 's'},
	VoicedAlveolarFricative:          {"voiced alveolar fricative", 'z'},
	VoicelessPostalveolarFricative:   {"voiceless postalveolar fricative", 'ʂ'},
	VoicelessAlveolopalatalFricative: {"voiceless alveolo-palatal fricative", 'ɕ'},
	VoicedPostalveolarFricative:      {"voiced postalveolar fricative", 'ʐ'},
	VoicelessVelarFricative:          {"voiceless velar fricative", 'x'},
	VoicelessGlottalFricative:        {"voiceless glottal fricative", 'h'},
	VoicelessAlveolarAffricate:       {"voiceless alveolar affricate", 'ʦ'},
	VoicelessAlveolopalatalAffricate: {"voiceless alveolo-palatal affricate", 'ʨ'},
	AlveolarLateral:                  {"alveolar lateral approximant", 'l'},
	AlveolarTrill:                    {"alveolar trill", 'r'},
	VoicedPalatalApproximant:         {"voiced palatal approximant", 'j'},
}

// vowelSymbols and consonantSymbols include the alternative spellings
// accepted on input; Symbol() always returns the canonical one.
var vowelSymbols = map[rune]VowelID{
	'u': CloseBackRounded,
	'ʉ': CloseCentralRounded,
	'ø': CloseMidFrontRounded,
	'ɵ': CloseMidCentralRounded,
	'ə': MidCentral,
	'æ': NearOpenFrontUnrounded,
	'ɑ': OpenBackUnrounded,
	'a': OpenFrontUnrounded,
	'ʌ': OpenMidBackUnrounded,
	'ɐ': NearOpenCentral,
	'e': CloseMidFrontUnrounded,
	'ɛ': OpenMidFrontUnrounded,
	'i': CloseFrontUnrounded,
	'ɪ': NearCloseFrontUnrounded,
	'ɨ': CloseCentralUnrounded,
	'o': CloseMidBackRounded,
}

var consonantSymbols = map[rune]ConsonantID{
	'm': VoicedBilabialNasal,
	'n': VoicedAlveolarNasal,
	'p': VoicelessBilabialPlosive,
	'b': VoicedBilabialPlosive,
	't': VoicelessAlveolarPlosive,
	'd': VoicedAlveolarPlosive,
	'k': VoicelessVelarPlosive,
	'g': VoicedVelarPlosive,
	'ɡ': VoicedVelarPlosive,
	'f': VoicelessLabiodentalFricative,
	'v': VoicedLabiodentalFricative,
	's': VoicelessAlveolarFricative,
	'z': VoicedAlveolarFricative,
	'ʂ': VoicelessPostalveolarFricative,
	'ʃ': VoicelessPostalveolarFricative,
	'ɕ': VoicelessAlveolopalatalFricative,
	'ʐ': VoicedPostalveolarFricative,
	'ʒ': VoicedPostalveolarFricative,
	'x': VoicelessVelarFricative,
	'h': VoicelessGlottalFricative,
	'ʦ': VoicelessAlveolarAffricate,
	'ʨ': VoicelessAlveolopalatalAffricate,
	'ʧ': VoicelessAlveolopalatalAffricate,
	'l': AlveolarLateral,
	'ɫ': AlveolarLateral,
	'r': AlveolarTrill,
	'ɾ': AlveolarTrill,
	'j': VoicedPalatalApproximant,
}

func (v VowelID) String() string {
	if int(v) >= len(vowels) {
		return fmt.Sprintf("VowelID(%d)", uint8(v))
	}
	return vowels[v].name
}

// Symbol returns the canonical IPA symbol of the vowel
func (v VowelID) Symbol() rune {
	return vowels[v].symbol
}

func (c ConsonantID) String() string {
	if int(c) >= len(consonants) {
		return fmt.Sprintf("ConsonantID(%d)", uint8(c))
	}
	return consonants[c].name
}

// Symbol returns the canonical IPA symbol of the consonant
func (c ConsonantID) Symbol() rune {
	return consonants[c].symbol
}

// SoundKind discriminates the Sound variants
type SoundKind uint8

const (
	KindVowel SoundKind = iota
	KindConsonant
	KindSpace
)

// Sound is one parsed unit of a transcription. Vowel is meaningful only for
// KindVowel, Consonant and Palatalized only for KindConsonant.
type Sound struct {
	Kind        SoundKind
	Vowel       VowelID
	Consonant   ConsonantID
	Long        bool
	Palatalized bool
}

// NewVowel returns a vowel sound
func NewVowel(v VowelID, long bool) Sound {
	return Sound{Kind: KindVowel, Vowel: v, Long: long}
}

// NewConsonant returns a consonant sound
func NewConsonant(c ConsonantID, long, palatalized bool) Sound {
	return Sound{Kind: KindConsonant, Consonant: c, Long: long, Palatalized: palatalized}
}

// Space returns the word separator sound
func Space() Sound {
	return Sound{Kind: KindSpace}
}

func (s Sound) String() string {
	var out string
	switch s.Kind {
	case KindVowel:
		out = string(s.Vowel.Symbol())
	case KindConsonant:
		out = string(s.Consonant.Symbol())
		if s.Palatalized {
			out += string(PalatalizationMark)
		}
	case KindSpace:
		return string(Separator)
	default:
		panic(fmt.Sprintf("ipa: unknown sound kind %d", s.Kind))
	}
	if s.Long {
		out += string(LengthMark)
	}
	return out
}

// Symbol describes one accepted input symbol
type Symbol struct {
	Rune  rune
	Name  string
	Vowel bool
}

// Symbols returns every accepted base symbol, vowels first, in catalog order.
// Alternative spellings follow their canonical symbol.
func Symbols() []Symbol {
	out := make([]Symbol, 0, len(vowelSymbols)+len(consonantSymbols))
	for id, info := range vowels {
		out = append(out, Symbol{Rune: info.symbol, Name: info.name, Vowel: true})
		out = append(out, aliases(info.symbol, func(r rune) bool {
			v, ok := vowelSymbols[r]
			return ok && v == VowelID(id)
		}, info.name, true)...)
	}
	for id, info := range consonants {
		out = append(out, Symbol{Rune: info.symbol, Name: info.name})
		out = append(out, aliases(info.symbol, func(r rune) bool {
			c, ok := consonantSymbols[r]
			return ok && c == ConsonantID(id)
		}, info.name, false)...)
	}
	return out
}

var aliasOrder = []rune{'ɡ', 'ʃ', 'ʒ', 'ʧ', 'ɫ', 'ɾ'}

func aliases(canonical rune, match func(rune) bool, name string, vowel bool) []Symbol {
	var out []Symbol
	for _, r := range aliasOrder {
		if r != canonical && match(r) {
			out = append(out, Symbol{Rune: r, Name: name, Vowel: vowel})
		}
	}
	return out
}
