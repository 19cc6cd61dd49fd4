// Package anki exports transcription/spelling pairs as Anki flashcards,
// either as a CSV import file or as an .apkg package backed by SQLite.
package anki
