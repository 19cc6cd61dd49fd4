package internal

import (
	"io"
	"strings"
	"unicode"
)

// Version is the ruphon release version
const Version = "0.3.0"

// SanitizeFilename creates a safe filename from a string. Letters of any
// script and digits are kept, everything else becomes an underscore.
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// CloseFile closes c and stores the close error in errp unless errp already
// holds an error. Meant to be deferred on files opened for writing.
func CloseFile(c io.Closer, errp *error) {
	if err := c.Close(); err != nil && *errp == nil {
		*errp = err
	}
}
