// Package extract is the text-extraction collaborator: it turns files into
// the raw text the scoring core works with. The core itself never opens
// files. Only plain-text formats are handled here; binary resume formats are
// rejected explicitly rather than half-parsed.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedFormat reports a file format this extractor cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrCorruptFile reports a file whose content could not be decoded as text.
var ErrCorruptFile = errors.New("corrupt or unreadable file")

var textExtensions = map[string]struct{}{
	".txt":  {},
	".text": {},
	".md":   {},
}

var knownBinaryExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Supported reports whether Text can read the given path.
func Supported(path string) bool {
	_, ok := textExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Text returns the file content as a string. Binary resume formats yield
// ErrUnsupportedFormat; unreadable or non-UTF-8 content yields ErrCorruptFile.
// Both are per-item conditions the caller records and moves past.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if _, ok := knownBinaryExtensions[ext]; ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if _, ok := textExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrCorruptFile, filepath.Base(path))
	}

	return string(data), nil
}
