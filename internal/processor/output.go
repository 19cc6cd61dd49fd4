package processor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/ruphon/internal"
)

type jsonResult struct {
	Line          int    `json:"line,omitempty"`
	Word          string `json:"word,omitempty"`
	Transcription string `json:"transcription"`
	Spelling      string `json:"spelling,omitempty"`
	Expected      string `json:"expected,omitempty"`
	Match         *bool  `json:"match,omitempty"`
	Error         string `json:"error,omitempty"`
}

// writeResults writes results in the configured format to the output file,
// or to p.out when no file is configured.
func (p *Processor) writeResults(results []Result) (err error) {
	out := p.out
	if p.flags.OutputFile != "" {
		file, createErr := os.Create(p.flags.OutputFile)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer internal.CloseFile(file, &err)
		out = file
	}

	if err = FormatResults(out, p.flags.Format, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// FormatResults writes results as text (one spelling per line, empty for
// failures), tsv (transcription, spelling, status) or json.
func FormatResults(w io.Writer, format string, results []Result) error {
	switch format {
	case "", "text":
		for _, res := range results {
			if _, err := fmt.Fprintln(w, res.Spelling); err != nil {
				return err
			}
		}
		return nil

	case "tsv":
		for _, res := range results {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", res.Transcription, res.Spelling, status(res)); err != nil {
				return err
			}
		}
		return nil

	case "json":
		out := make([]jsonResult, 0, len(results))
		for _, res := range results {
			jr := jsonResult{
				Line:          res.Line,
				Word:          res.Word,
				Transcription: res.Transcription,
				Spelling:      res.Spelling,
				Expected:      res.Expected,
			}
			if res.Err != nil {
				jr.Error = res.Err.Error()
			} else if res.Expected != "" {
				match := !res.Mismatch()
				jr.Match = &match
			}
			out = append(out, jr)
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func status(res Result) string {
	switch {
	case res.Err != nil:
		return "error: " + res.Err.Error()
	case res.Mismatch():
		return "mismatch: expected " + res.Expected
	default:
		return "ok"
	}
}

// ValidFormat reports whether format is a supported output format
func ValidFormat(format string) bool {
	switch format {
	case "", "text", "tsv", "json":
		return true
	}
	return false
}
