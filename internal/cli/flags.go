package cli

import "runtime"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	OutputDir   string
	OutputFile  string
	Format      string
	BatchFile   string
	Workers     int
	Word        bool
	Explain     bool
	ListSymbols bool
	ListModels  bool
	Archive     bool
	LogLevel    string

	// Anki flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string

	// OpenAI flags
	OpenAIModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:      "text",
		Workers:     runtime.NumCPU(),
		LogLevel:    "warn",
		DeckName:    "Russian Spelling",
		OpenAIModel: "gpt-4o-mini",
	}
}
