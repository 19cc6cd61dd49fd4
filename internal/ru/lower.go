package ru

import (
	"fmt"

	"codeberg.org/snonux/ruphon/internal/ipa"
)

// Several transcription qualities share a letter; the orthography
// distinguishes five vowels only.
var vowelLetters = map[ipa.VowelID]Vowel{
	ipa.CloseBackRounded:        U,
	ipa.CloseCentralRounded:     U,
	ipa.CloseMidFrontRounded:    O,
	ipa.CloseMidCentralRounded:  O,
	ipa.CloseMidBackRounded:     O,
	ipa.MidCentral:              A,
	ipa.NearOpenFrontUnrounded:  A,
	ipa.OpenBackUnrounded:       A,
	ipa.OpenFrontUnrounded:      A,
	ipa.OpenMidBackUnrounded:    A,
	ipa.NearOpenCentral:         A,
	ipa.CloseMidFrontUnrounded:  E,
	ipa.OpenMidFrontUnrounded:   E,
	ipa.CloseFrontUnrounded:     I,
	ipa.NearCloseFrontUnrounded: I,
	ipa.CloseCentralUnrounded:   I,
}

var consonantLetters = map[ipa.ConsonantID]Consonant{
	ipa.VoicedBilabialNasal:              M,
	ipa.VoicedAlveolarNasal:              N,
	ipa.VoicelessBilabialPlosive:         P,
	ipa.VoicedBilabialPlosive:            B,
	ipa.VoicelessAlveolarPlosive:         T,
	ipa.VoicedAlveolarPlosive:            D,
	ipa.VoicelessVelarPlosive:            K,
	ipa.VoicedVelarPlosive:               G,
	ipa.VoicelessLabiodentalFricative:    F,
	ipa.VoicedLabiodentalFricative:       V,
	ipa.VoicelessAlveolarFricative:       S,
	ipa.VoicedAlveolarFricative:          Z,
	ipa.VoicelessPostalveolarFricative:   Sh,
	ipa.VoicelessAlveolopalatalFricative: Sh,
	ipa.VoicedPostalveolarFricative:      Zh,
	ipa.VoicelessVelarFricative:          H,
	ipa.VoicelessGlottalFricative:        H,
	ipa.VoicelessAlveolarAffricate:       Ts,
	ipa.AlveolarLateral:                  L,
	ipa.AlveolarTrill:                    R,
}

var palatalLetters = map[ipa.ConsonantID]Palatal{
	ipa.VoicedPalatalApproximant:         J,
	ipa.VoicelessAlveolopalatalAffricate: Ch,
}

// Lower maps sounds to phonemes. A long sound becomes two identical
// consecutive units.
func Lower(sounds []ipa.Sound) Seq {
	seq := make(Seq, 0, len(sounds))
	for _, s := range sounds {
		p := lowerSound(s)
		seq = append(seq, p)
		if s.Long {
			seq = append(seq, p)
		}
	}
	return seq
}

func lowerSound(s ipa.Sound) Phoneme {
	switch s.Kind {
	case ipa.KindVowel:
		v, ok := vowelLetters[s.Vowel]
		if !ok {
			panic(fmt.Sprintf("ru: no letter for vowel %s", s.Vowel))
		}
		return NewVowel(v)
	case ipa.KindConsonant:
		if p, ok := palatalLetters[s.Consonant]; ok {
			return NewPalatal(p)
		}
		c, ok := consonantLetters[s.Consonant]
		if !ok {
			panic(fmt.Sprintf("ru: no letter for consonant %s", s.Consonant))
		}
		return NewConsonant(c, s.Palatalized)
	case ipa.KindSpace:
		return SpaceUnit()
	default:
		panic(fmt.Sprintf("ru: unknown sound kind %d", s.Kind))
	}
}
