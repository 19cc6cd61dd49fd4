package anki

import (
	"encoding/csv"
	"fmt"
	"os"

	"codeberg.org/snonux/ruphon/internal"
)

// Card is one transcription/spelling flashcard
type Card struct {
	Transcription string // IPA transcription shown on the front
	Spelling      string // Cyrillic spelling shown on the back
	Notes         string // Optional notes, e.g. the source word
}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "ruphon_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible CSV import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new CSV generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// Cards returns the collected cards
func (g *Generator) Cards() []Card {
	return g.cards
}

// GenerateCSV writes all cards to the configured output path
func (g *Generator) GenerateCSV() (err error) {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer internal.CloseFile(file, &err)

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		if err := writer.Write([]string{"Transcription", "Spelling", "Notes"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		if err := writer.Write([]string{card.Transcription, card.Spelling, card.Notes}); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// GenerateAPKG writes the cards as an .apkg package
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkg := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkg.AddCard(card)
	}
	return apkg.GenerateAPKG(outputPath)
}

// Stats returns the number of cards and how many carry notes
func (g *Generator) Stats() (total, withNotes int) {
	for _, card := range g.cards {
		total++
		if card.Notes != "" {
			withNotes++
		}
	}
	return total, withNotes
}
