// Package translit spells a phonetic transcription in Russian Cyrillic by
// composing the ipa parser with the ru lowering and rendering stages.
package translit
