package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTextReadsPlainFiles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Go developer, 5 years."), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Go developer, 5 years." {
		t.Fatalf("got %q", got)
	}
}

func TestTextRejectsBinaryFormats(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"resume.pdf", "resume.doc", "resume.docx"} {
		if _, err := Text(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestTextRejectsUnknownExtensions(t *testing.T) {
	t.Parallel()

	if _, err := Text("resume.xyz"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTextMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := Text(path); !errors.Is(err, ErrCorruptFile) {
		t.Fatalf("expected ErrCorruptFile, got %v", err)
	}
}

func TestTextInvalidUTF8(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbled.txt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Text(path); !errors.Is(err, ErrCorruptFile) {
		t.Fatalf("expected ErrCorruptFile, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want bool
	}{
		{"resume.txt", true},
		{"resume.TXT", true},
		{"notes.md", true},
		{"resume.pdf", false},
		{"resume", false},
	}

	for _, tc := range cases {
		if got := Supported(tc.path); got != tc.want {
			t.Fatalf("Supported(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
