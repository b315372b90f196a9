// Package textnorm turns raw extracted text into the normalized token
// sequence every scoring sub-function works with. Normalization is
// deterministic: the same input always yields the same tokens.
package textnorm

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyInput reports that no meaningful content was supplied. Callers
// decide whether to skip the item or surface a failed result.
var ErrEmptyInput = errors.New("input text is empty")

// DefaultMinTokenLength drops single-character noise such as bullet remnants.
const DefaultMinTokenLength = 2

// Options control tokenization. The zero value applies the defaults.
type Options struct {
	// Stopwords are removed from the token stream after lowercasing.
	Stopwords []string
	// MinTokenLength drops shorter tokens; 0 means DefaultMinTokenLength.
	MinTokenLength int
	// KeepNumbers retains all-digit tokens, which are treated as noise
	// by default.
	KeepNumbers bool
}

// Normalize lowercases the text, splits it into tokens, strips punctuation
// and stopwords, and drops tokens below the minimum length. Characters that
// commonly appear inside technology names ('+', '#', '.') are kept so that
// tokens like "c++", "c#" and "node.js" survive intact.
func Normalize(raw string, opts Options) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	minLen := opts.MinTokenLength
	if minLen == 0 {
		minLen = DefaultMinTokenLength
	}

	stop := make(map[string]struct{}, len(opts.Stopwords))
	for _, w := range opts.Stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	tokens := make([]string, 0, len(raw)/6)
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		t := strings.TrimRight(word.String(), ".")
		word.Reset()

		if len([]rune(t)) < minLen {
			return
		}
		if _, ok := stop[t]; ok {
			return
		}
		if !opts.KeepNumbers && isNumeric(t) {
			return
		}
		tokens = append(tokens, t)
	}

	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}
