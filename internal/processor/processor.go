package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/viper"

	"codeberg.org/snonux/ruphon/internal"
	"codeberg.org/snonux/ruphon/internal/anki"
	"codeberg.org/snonux/ruphon/internal/batch"
	"codeberg.org/snonux/ruphon/internal/cli"
	"codeberg.org/snonux/ruphon/internal/ipa"
	"codeberg.org/snonux/ruphon/internal/phonetic"
	"codeberg.org/snonux/ruphon/internal/translit"
)

// Transcriber fetches a transcription for a Russian word
type Transcriber interface {
	FetchTranscription(ctx context.Context, word string) (string, error)
}

// Result is the outcome of spelling one transcription
type Result struct {
	Line          int
	Word          string // source word when the transcription was fetched
	Transcription string
	Spelling      string
	Expected      string
	Err           error
}

// Mismatch reports whether the spelling differs from the expected one
func (r Result) Mismatch() bool {
	return r.Err == nil && r.Expected != "" && r.Expected != r.Spelling
}

// WordError reports a transcription fetched for Word that could not be spelled
type WordError struct {
	Word          string
	Transcription string
	Err           error
}

func (e *WordError) Error() string {
	return fmt.Sprintf("%q transcribed as [%s]: %v", e.Word, e.Transcription, e.Err)
}

func (e *WordError) Unwrap() error {
	return e.Err
}

// Summary counts the outcomes of a batch
type Summary struct {
	Total      int
	Succeeded  int
	Failed     int
	Mismatched int
}

// Processor handles the main transcription processing logic
type Processor struct {
	flags   *cli.Flags
	fetcher Transcriber
	out     io.Writer
	errOut  io.Writer
	results []Result
}

// NewProcessor creates a new processor writing to stdout and stderr
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		fetcher: phonetic.NewFetcher(phonetic.Config{
			APIKey:  cli.GetOpenAIKey(),
			Model:   flags.OpenAIModel,
			Timeout: viper.GetDuration("phonetic.timeout"),
		}),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetOutput redirects results and diagnostics
func (p *Processor) SetOutput(out, errOut io.Writer) {
	p.out = out
	p.errOut = errOut
}

// SetTranscriber replaces the transcription fetcher used by ProcessWord
func (p *Processor) SetTranscriber(t Transcriber) {
	p.fetcher = t
}

// Results returns every result processed so far, in input order
func (p *Processor) Results() []Result {
	return p.results
}

// ProcessSingle spells one transcription and writes it out
func (p *Processor) ProcessSingle(ctx context.Context, transcription string) (Result, error) {
	res := spell(ctx, batch.Entry{Transcription: transcription})
	if res.Err != nil {
		return res, res.Err
	}

	p.results = append(p.results, res)
	return res, p.writeResults([]Result{res})
}

// ProcessWord fetches a transcription for a Russian word, spells it and
// compares the spelling with the word.
func (p *Processor) ProcessWord(ctx context.Context, word string) (Result, error) {
	transcription, err := p.fetcher.FetchTranscription(ctx, word)
	if err != nil {
		return Result{Word: word, Err: err}, err
	}
	slog.Debug("Fetched transcription", "word", word, "transcription", transcription)

	res := spell(ctx, batch.Entry{Transcription: transcription, Expected: strings.ToLower(word)})
	res.Word = word
	if res.Err != nil {
		return res, &WordError{Word: word, Transcription: transcription, Err: res.Err}
	}
	if res.Mismatch() {
		fmt.Fprintf(p.errOut, "Note: [%s] spells as %q, not %q\n", res.Transcription, res.Spelling, res.Expected)
	}

	p.results = append(p.results, res)
	return res, p.writeResults([]Result{res})
}

// ProcessBatch spells every entry of the batch file concurrently. Entry
// errors are reported and counted; only I/O failures are returned.
func (p *Processor) ProcessBatch(ctx context.Context) ([]Result, Summary, error) {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return nil, Summary{}, err
	}

	workers := p.flags.Workers
	if workers < 1 {
		workers = 1
	}
	slog.Info("Processing batch", "file", p.flags.BatchFile, "entries", len(entries), "workers", workers)

	mapper := iter.Mapper[batch.Entry, Result]{MaxGoroutines: workers}
	results := mapper.Map(entries, func(e *batch.Entry) Result {
		return spell(ctx, *e)
	})

	summary := Summary{Total: len(results)}
	for _, res := range results {
		switch {
		case res.Err != nil:
			summary.Failed++
			fmt.Fprintf(p.errOut, "Line %d: %s\n", res.Line, Diagnose(res.Transcription, res.Err))
		case res.Mismatch():
			summary.Mismatched++
			summary.Succeeded++
			fmt.Fprintf(p.errOut, "Line %d: %q spells as %q, expected %q\n", res.Line, res.Transcription, res.Spelling, res.Expected)
		default:
			summary.Succeeded++
		}
	}

	p.results = append(p.results, results...)
	if err := p.writeResults(results); err != nil {
		return results, summary, err
	}

	fmt.Fprintf(p.errOut, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.errOut, "Total: %d\n", summary.Total)
	fmt.Fprintf(p.errOut, "Spelled: %d\n", summary.Succeeded)
	if summary.Mismatched > 0 {
		fmt.Fprintf(p.errOut, "Mismatched: %d\n", summary.Mismatched)
	}
	if summary.Failed > 0 {
		fmt.Fprintf(p.errOut, "Errors: %d\n", summary.Failed)
	}
	fmt.Fprintf(p.errOut, "================================\n")

	return results, summary, ctx.Err()
}

// Explain writes the spelling decision for every unit of a transcription
func (p *Processor) Explain(transcription string) error {
	steps, err := translit.Explain(transcription)
	if err != nil {
		return err
	}

	var spelled strings.Builder
	for _, step := range steps {
		fmt.Fprintln(p.out, step)
		spelled.WriteString(step.Grapheme)
	}
	fmt.Fprintf(p.out, "=> %s\n", spelled.String())
	return nil
}

// ExplainWord fetches a transcription for a Russian word and explains it
func (p *Processor) ExplainWord(ctx context.Context, word string) error {
	transcription, err := p.fetcher.FetchTranscription(ctx, word)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "%s [%s]\n", word, transcription)
	if err := p.Explain(transcription); err != nil {
		return &WordError{Word: word, Transcription: transcription, Err: err}
	}
	return nil
}

// ListSymbols writes the accepted transcription symbols
func (p *Processor) ListSymbols() {
	fmt.Fprintln(p.out, "Vowels:")
	for _, s := range ipa.Symbols() {
		if s.Vowel {
			fmt.Fprintf(p.out, "  %c  %s\n", s.Rune, s.Name)
		}
	}
	fmt.Fprintln(p.out, "Consonants:")
	for _, s := range ipa.Symbols() {
		if !s.Vowel {
			fmt.Fprintf(p.out, "  %c  %s\n", s.Rune, s.Name)
		}
	}
	fmt.Fprintf(p.out, "Modifiers:\n  %c  palatalization\n  %c  length\n", ipa.PalatalizationMark, ipa.LengthMark)
}

// GenerateAnkiFile exports all successful results and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	base := internal.SanitizeFilename(p.flags.DeckName)
	csvPath := filepath.Join(p.flags.OutputDir, base+"_import.csv")
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     csvPath,
		IncludeHeaders: true,
	})

	for _, res := range p.results {
		if res.Err != nil {
			continue
		}
		gen.AddCard(anki.Card{
			Transcription: res.Transcription,
			Spelling:      res.Spelling,
			Notes:         res.Word,
		})
	}

	total, _ := gen.Stats()
	if total == 0 {
		return "", errors.New("no spelled transcriptions to export")
	}

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = csvPath
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(p.flags.OutputDir, base+".apkg")
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	slog.Info("Anki export written", "path", outputPath, "cards", total)
	return outputPath, nil
}

func spell(ctx context.Context, e batch.Entry) Result {
	res := Result{Line: e.Line, Transcription: e.Transcription, Expected: e.Expected}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	res.Spelling, res.Err = translit.Transliterate(e.Transcription)
	return res
}

// Diagnose formats err for the user. Parse errors point at the offending
// symbol of input, or of the fetched transcription for a WordError.
func Diagnose(input string, err error) string {
	var werr *WordError
	if errors.As(err, &werr) {
		return fmt.Sprintf("%q transcribed as [%s]: %s", werr.Word, werr.Transcription, Diagnose(werr.Transcription, werr.Err))
	}

	var perr *ipa.ParseError
	if !errors.As(err, &perr) {
		return err.Error()
	}
	runes := []rune(input)
	if perr.Position >= len(runes) {
		return perr.Error()
	}
	pointer := strings.Repeat(" ", perr.Position) + "^"
	return fmt.Sprintf("%s\n  %s\n  %s", perr.Error(), input, pointer)
}
