package impl

import (
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name      string
		stride    int
		offset    int
		firstLine string
		want      string
	}{
		{"punctuation dropped", 50, 7, "Hello, world!", "skip50_0007_Hello_world.png"},
		{"wide offset", 1, 123456, "a b", "skip1_123456_a_b.png"},
		{"hyphen and underscore kept", 50, 0, "well-known snake_case", "skip50_0000_well-known_snake_case.png"},
		{"unicode letters kept", 3, 42, "naïve Straße", "skip3_0042_naïve_Straße.png"},
		{"nothing left", 50, 1200, "?!", "skip50_1200_.png"},
		{"surrounding space trimmed", 2, 5, " (quoted) ", "skip2_0005_quoted.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.stride, tt.offset, tt.firstLine, DEFAULT_SNIPPET_LENGTH); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeSnippetTruncatesRunes(t *testing.T) {
	got := SanitizeSnippet(strings.Repeat("é", 60), 50)
	if want := strings.Repeat("é", 50); got != want {
		t.Errorf("SanitizeSnippet() = %q, want %q", got, want)
	}
}

func TestGeneratedImageFilename(t *testing.T) {
	img := GeneratedImage{
		Layout: WrappedLayout{Lines: []string{"quick brown", "fox"}},
		Offset: 1200,
		Stride: 50,
	}
	if got, want := img.Filename(DEFAULT_SNIPPET_LENGTH), "skip50_1200_quick_brown.png"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestParseFilename(t *testing.T) {
	stride, offset, snippet, err := ParseFilename(Filename(50, 1200, "quick brown fox", DEFAULT_SNIPPET_LENGTH))
	if err != nil {
		t.Fatalf("ParseFilename() error = %v", err)
	}
	if stride != 50 || offset != 1200 || snippet != "quick_brown_fox" {
		t.Errorf("ParseFilename() = %v, %v, %q", stride, offset, snippet)
	}

	for _, name := range []string{"notes.txt", "skip_0001_a.png", "skipx_0001_a.png", "skip50_0001_a.jpg"} {
		if _, _, _, err := ParseFilename(name); err == nil {
			t.Errorf("ParseFilename(%q) error = nil, want error", name)
		}
	}
}
