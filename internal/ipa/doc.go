// Package ipa parses phonetic transcriptions written in a constrained subset
// of the International Phonetic Alphabet into a sequence of Sound values.
// Palatalization (ʲ) and length (ː) marks are resolved by lookahead and
// recorded as flags on the preceding base symbol.
package ipa
