package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one transcription from a batch file
type Entry struct {
	Line          int    // 1-based line number in the source file
	Transcription string // IPA transcription
	Expected      string // Expected spelling, empty when not given
}

// ReadBatchFile reads entries from a file. Supported line formats:
//   - "nʲæ"        transcription only
//   - "nʲæ = ня"   transcription with the expected spelling
//   - "# comment"  ignored, as are blank lines
func ReadBatchFile(filename string) ([]Entry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	entries, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", filename, err)
	}
	return entries, nil
}

// Read parses batch entries from r. Lines have no length limit.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++

		// transcriptions contain meaningful spaces, so only the ends are trimmed
		line := strings.TrimRight(raw, "\r\n")
		line = strings.Trim(line, " \t")
		if line != "" && !strings.HasPrefix(line, "#") {
			entry := Entry{Line: lineNo, Transcription: line}
			if before, after, found := strings.Cut(line, "="); found {
				entry.Transcription = strings.Trim(before, " \t")
				entry.Expected = strings.Trim(after, " \t")
			}
			if entry.Transcription != "" {
				entries = append(entries, entry)
			}
		}

		if err == io.EOF {
			break
		}
	}

	return entries, nil
}
