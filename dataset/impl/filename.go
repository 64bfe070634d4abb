package impl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var filenamePattern = regexp.MustCompile(`^skip(\d+)_(\d+)_(.*)\.png$`)

// Filename names an image after the run's stride, the block's cursor offset and the start of its first line.
// E.g., Filename(50, 7, "Hello, world!", 50) = "skip50_0007_Hello_world.png"
func Filename(stride int, offset int, firstLine string, snippetLength int) string {
	return fmt.Sprintf("skip%d_%04d_%s.png", stride, offset, SanitizeSnippet(firstLine, snippetLength))
}

// Filename of the image within its font directory.
func (g GeneratedImage) Filename(snippetLength int) string {
	firstLine := ""
	if len(g.Layout.Lines) > 0 {
		firstLine = g.Layout.Lines[0]
	}
	return Filename(g.Stride, g.Offset, firstLine, snippetLength)
}

// SanitizeSnippet keeps letters, digits, spaces, underscores and hyphens, trims the result,
// replaces spaces with underscores and cuts it to maxLength runes.
func SanitizeSnippet(text string, maxLength int) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			return r
		}
		return -1
	}, text)
	snippet := []rune(strings.ReplaceAll(strings.TrimSpace(kept), " ", "_"))
	if len(snippet) > maxLength {
		snippet = snippet[:maxLength]
	}
	return string(snippet)
}

// ParseFilename recovers the stride, offset and snippet from a name produced by Filename.
func ParseFilename(name string) (stride int, offset int, snippet string, err error) {
	match := filenamePattern.FindStringSubmatch(name)
	if match == nil {
		return 0, 0, "", fmt.Errorf("not a generated image name: %q", name)
	}
	stride, err = strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid stride in %q: %w", name, err)
	}
	offset, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid offset in %q: %w", name, err)
	}
	return stride, offset, match[3], nil
}
