// Package ru lowers parsed sounds into Russian orthographic phonemes and
// renders them as Cyrillic text.
//
// Rendering is a single left-to-right pass. Each unit is spelled from its own
// identity plus a fixed set of predicates over its immediate neighbours:
// whether the previous unit is palatalized, is a consonant, or already spells
// its own palatalization (щ, ч), and whether the next unit is a vowel. This is
// enough to place iotated vowels, the soft sign, the hard sign and the glide.
package ru
