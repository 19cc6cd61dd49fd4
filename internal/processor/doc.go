// Package processor contains the application logic around the transliterator.
// It spells single transcriptions, fetched word transcriptions and batch
// files, formats the results, and exports them as Anki decks. It serves as
// the coordinator between the cli, batch, phonetic and anki packages.
package processor
