package internal

import (
	"errors"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Russian Spelling", "Russian_Spelling"},
		{"подъезд", "подъезд"},
		{"a/b\\c", "a_b_c"},
		{"deck-1_x", "deck-1_x"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type closer struct{ err error }

func (c closer) Close() error { return c.err }

func TestCloseFile(t *testing.T) {
	closeErr := errors.New("close failed")
	writeErr := errors.New("write failed")

	tests := []struct {
		name     string
		closeErr error
		prevErr  error
		want     error
	}{
		{"clean close", nil, nil, nil},
		{"close error is reported", closeErr, nil, closeErr},
		{"earlier error is kept", closeErr, writeErr, writeErr},
		{"earlier error without close error", nil, writeErr, writeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prevErr
			CloseFile(closer{tt.closeErr}, &err)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Errorf("Expected error %v, got %v", tt.want, err)
			}
		})
	}
}
