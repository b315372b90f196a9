// Package skills matches normalized token streams against fixed reference
// vocabularies. Matching is exact phrase containment by default so results
// stay auditable; fuzzy strategies plug in through the Matcher interface.
package skills

import (
	"sort"
	"strings"
	"unicode"
)

// Matcher is an optional fallback consulted for vocabulary entries that did
// not match exactly. Implementations return whether the entry should count
// as present in the token stream.
type Matcher interface {
	Match(entry string, tokens []string) bool
}

type phrase struct {
	name   string
	tokens []string
}

// Extractor scans token sequences for known technical and soft skills.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	technical []phrase
	soft      []phrase
	fuzzy     Matcher
}

// NewExtractor builds an extractor over the two vocabularies. Multi-word
// entries ("machine learning") match as n-grams over consecutive tokens.
func NewExtractor(technical, soft []string) *Extractor {
	return &Extractor{
		technical: compile(technical),
		soft:      compile(soft),
	}
}

// WithMatcher installs a fuzzy fallback and returns the extractor.
func (e *Extractor) WithMatcher(m Matcher) *Extractor {
	e.fuzzy = m
	return e
}

// Extract returns the technical and soft vocabulary entries found in the
// token sequence, each sorted ascending. Empty results are valid: a resume
// with no recognizable skills is a meaningful outcome, not an error.
func (e *Extractor) Extract(tokens []string) (technical, soft []string) {
	index := indexTokens(tokens)
	technical = e.scan(e.technical, tokens, index)
	soft = e.scan(e.soft, tokens, index)
	return technical, soft
}

func (e *Extractor) scan(vocabulary []phrase, tokens []string, index map[string][]int) []string {
	var found []string
	for _, p := range vocabulary {
		if containsPhrase(p.tokens, tokens, index) {
			found = append(found, p.name)
			continue
		}
		if e.fuzzy != nil && e.fuzzy.Match(p.name, tokens) {
			found = append(found, p.name)
		}
	}
	sort.Strings(found)
	return found
}

func compile(entries []string) []phrase {
	phrases := make([]phrase, 0, len(entries))
	for _, entry := range entries {
		name := strings.ToLower(strings.TrimSpace(entry))
		if name == "" {
			continue
		}
		tokens := splitEntry(name)
		if len(tokens) == 0 {
			continue
		}
		phrases = append(phrases, phrase{name: name, tokens: tokens})
	}
	return phrases
}

// splitEntry tokenizes a vocabulary entry with the same character rules the
// normalizer applies to documents, so entries like "ci/cd" line up with the
// token stream they are matched against.
func splitEntry(entry string) []string {
	return strings.FieldsFunc(entry, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' && r != '.'
	})
}

func indexTokens(tokens []string) map[string][]int {
	index := make(map[string][]int, len(tokens))
	for i, t := range tokens {
		index[t] = append(index[t], i)
	}
	return index
}

func containsPhrase(want, tokens []string, index map[string][]int) bool {
	if len(want) == 0 {
		return false
	}

	starts, ok := index[want[0]]
	if !ok {
		return false
	}
	if len(want) == 1 {
		return true
	}

	for _, start := range starts {
		if start+len(want) > len(tokens) {
			continue
		}
		matched := true
		for i := 1; i < len(want); i++ {
			if tokens[start+i] != want[i] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
