package textnorm

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	opts := Options{
		Stopwords: []string{"the", "and", "with", "of", "in"},
	}

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "Senior Engineer, Backend!",
			want:  []string{"senior", "engineer", "backend"},
		},
		{
			name:  "removes stopwords and short tokens",
			input: "the design and delivery of a system",
			want:  []string{"design", "delivery", "system"},
		},
		{
			name:  "keeps technology names intact",
			input: "C++, C# and Node.js experience",
			want:  []string{"c++", "c#", "node.js", "experience"},
		},
		{
			name:  "drops bare numbers",
			input: "shipped 12 releases in 2023",
			want:  []string{"shipped", "releases"},
		},
		{
			name:  "trims trailing dots",
			input: "python. aws.",
			want:  []string{"python", "aws"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\n\t  \n"} {
		if _, err := Normalize(input, Options{}); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("input %q: expected ErrEmptyInput, got %v", input, err)
		}
	}
}

func TestNormalizeKeepNumbers(t *testing.T) {
	t.Parallel()

	got, err := Normalize("released 12 versions", Options{KeepNumbers: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"released", "12", "versions"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	t.Parallel()

	input := "Senior Go developer, 5+ years with Kubernetes and AWS."
	opts := Options{Stopwords: []string{"and", "with"}}

	first, err := Normalize(input, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := Normalize(input, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("normalization is not deterministic: %v vs %v", first, again)
		}
	}
}
