package skills

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(
		[]string{"python", "aws", "machine learning", "node.js", "ci/cd"},
		[]string{"leadership", "problem solving"},
	)

	cases := []struct {
		name          string
		tokens        []string
		wantTechnical []string
		wantSoft      []string
	}{
		{
			name:          "single tokens",
			tokens:        []string{"built", "services", "in", "python", "on", "aws"},
			wantTechnical: []string{"aws", "python"},
		},
		{
			name:          "multi-word phrase matches as n-gram",
			tokens:        []string{"applied", "machine", "learning", "models"},
			wantTechnical: []string{"machine learning"},
		},
		{
			name:   "phrase words out of order do not match",
			tokens: []string{"learning", "about", "machine", "tools"},
		},
		{
			name:          "slash-separated entry matches consecutive tokens",
			tokens:        []string{"owned", "ci", "cd", "pipelines"},
			wantTechnical: []string{"ci/cd"},
		},
		{
			name:     "soft skills are categorized separately",
			tokens:   []string{"strong", "problem", "solving", "and", "leadership"},
			wantSoft: []string{"leadership", "problem solving"},
		},
		{
			name:   "no skills found is a valid empty result",
			tokens: []string{"unrelated", "words", "only"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			technical, soft := extractor.Extract(tc.tokens)
			if !reflect.DeepEqual(technical, tc.wantTechnical) {
				t.Fatalf("technical: got %v, want %v", technical, tc.wantTechnical)
			}
			if !reflect.DeepEqual(soft, tc.wantSoft) {
				t.Fatalf("soft: got %v, want %v", soft, tc.wantSoft)
			}
		})
	}
}

func TestExtractResultsSorted(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor([]string{"sql", "aws", "python"}, nil)

	technical, _ := extractor.Extract([]string{"sql", "python", "aws"})
	want := []string{"aws", "python", "sql"}
	if !reflect.DeepEqual(technical, want) {
		t.Fatalf("got %v, want %v", technical, want)
	}
}

type suffixMatcher struct{}

func (suffixMatcher) Match(entry string, tokens []string) bool {
	for _, t := range tokens {
		if len(t) >= 3 && len(entry) >= 3 && t[:3] == entry[:3] {
			return true
		}
	}
	return false
}

func TestExtractWithFuzzyFallback(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor([]string{"kubernetes"}, nil).WithMatcher(suffixMatcher{})

	technical, _ := extractor.Extract([]string{"kuberntes"})
	if !reflect.DeepEqual(technical, []string{"kubernetes"}) {
		t.Fatalf("expected fuzzy fallback to match, got %v", technical)
	}
}
