package cli

import (
	"reflect"
	"runtime"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Format", flags.Format, "text"},
		{"Workers", flags.Workers, runtime.NumCPU()},
		{"LogLevel", flags.LogLevel, "warn"},
		{"DeckName", flags.DeckName, "Russian Spelling"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	boolTests := []struct {
		name  string
		value bool
	}{
		{"Word", flags.Word},
		{"Explain", flags.Explain},
		{"ListSymbols", flags.ListSymbols},
		{"ListModels", flags.ListModels},
		{"Archive", flags.Archive},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s should default to false", tt.name)
			}
		})
	}

	if flags.CfgFile != "" || flags.BatchFile != "" || flags.OutputFile != "" {
		t.Error("Expected empty string defaults for file flags")
	}
}
