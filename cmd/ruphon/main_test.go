package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"codeberg.org/snonux/ruphon/internal/cli"
	"codeberg.org/snonux/ruphon/internal/processor"
	"codeberg.org/snonux/ruphon/internal/testutil"
)

func withTranscriber(t *testing.T, mock *testutil.MockTranscriber) {
	t.Helper()

	orig := newProcessor
	newProcessor = func(flags *cli.Flags) *processor.Processor {
		p := processor.NewProcessor(flags)
		p.SetTranscriber(mock)
		return p
	}
	t.Cleanup(func() { newProcessor = orig })
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	stdout, stderr = testutil.CaptureOutput(t, func() {
		code = run(context.Background(), args, os.Stderr)
	})
	return code, stdout, stderr
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr []string
	}{
		{
			name:       "transcription",
			args:       []string{"podjezd"},
			wantStdout: "подъезд\n",
		},
		{
			name:       "no input",
			args:       []string{},
			wantCode:   1,
			wantStderr: []string{"no transcription given"},
		},
		{
			name:       "unknown format",
			args:       []string{"--format", "xml", "nʲæ"},
			wantCode:   1,
			wantStderr: []string{`unknown output format "xml"`},
		},
		{
			name:     "unsupported symbol points into the transcription",
			args:     []string{"nʲæy"},
			wantCode: 1,
			wantStderr: []string{
				"unsupported symbol 'y'",
				"\n  nʲæy\n     ^\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("Expected exit code %d, got %d (stderr: %s)", tt.wantCode, code, stderr)
			}
			if tt.wantStdout != "" && stdout != tt.wantStdout {
				t.Errorf("Expected stdout %q, got %q", tt.wantStdout, stdout)
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr, want) {
					t.Errorf("Expected stderr to contain %q, got %q", want, stderr)
				}
			}
		})
	}
}

func TestRun_WordParseError(t *testing.T) {
	withTranscriber(t, &testutil.MockTranscriber{Transcriptions: map[string]string{
		"съешьте": "sʲeʲjatʲ",
	}})

	code, stdout, stderr := runCLI(t, "--word", "съешьте")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Errorf("Expected no stdout, got %q", stdout)
	}

	// the caret points into the fetched transcription, not the word
	want := `"съешьте" transcribed as [sʲeʲjatʲ]: vowel 'e'`
	if !strings.Contains(stderr, want) {
		t.Errorf("Expected stderr to contain %q, got %q", want, stderr)
	}
	if !strings.HasSuffix(stderr, "\n  sʲeʲjatʲ\n    ^\n") {
		t.Errorf("Expected caret under the transcription, got %q", stderr)
	}
}

func TestRun_ExplainWord(t *testing.T) {
	mock := &testutil.MockTranscriber{Transcriptions: map[string]string{
		"подъезд": "podjezd",
	}}
	withTranscriber(t, mock)

	code, stdout, stderr := runCLI(t, "--explain", "--word", "подъезд")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr: %s)", code, stderr)
	}
	if !strings.HasPrefix(stdout, "подъезд [podjezd]\n") {
		t.Errorf("Expected the fetched transcription first, got %q", stdout)
	}
	if !strings.HasSuffix(stdout, "=> подъезд\n") {
		t.Errorf("Expected explained spelling, got %q", stdout)
	}
	if len(mock.Calls) != 1 || mock.Calls[0] != "подъезд" {
		t.Errorf("Expected one lookup of the word, got %v", mock.Calls)
	}
}
