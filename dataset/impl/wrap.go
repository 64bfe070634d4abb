package impl

import (
	"strings"
)

// Lays words out greedily, left to right, onto lines no wider than maxWidth.
//
// Each word is measured with its trailing space. The horizontal cursor starts at leftMargin,
// so a line may carry maxWidth - leftMargin pixels of text. Placement stops at the first word
// that would open a line beyond maxLines, or at a first word too wide for an empty line. In the
// latter case WordsConsumed is 0 and the caller decides what to do with the word.
func wrapText(words []string, metrics FontMetrics, maxWidth float64, leftMargin float64, maxLines int, lineSpacing float64) WrappedLayout {
	lineHeight := metrics.LineHeight()
	lines := make([]string, 0, maxLines)
	current := make([]string, 0, len(words))
	x := leftMargin
	consumed := 0

	for _, word := range words {
		width := metrics.TextWidth(word + " ")
		if x+width > maxWidth {
			if len(current) == 0 {
				break
			}
			if len(lines)+1 >= maxLines {
				break
			}
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
			x = leftMargin
		}
		current = append(current, word)
		x += width
		consumed++
	}
	if len(current) > 0 && len(lines) < maxLines {
		lines = append(lines, strings.Join(current, " "))
	}

	return WrappedLayout{
		Lines:         lines,
		TotalHeight:   blockHeight(len(lines), lineHeight, lineSpacing),
		LineHeight:    lineHeight,
		WordsConsumed: consumed,
	}
}

func blockHeight(lineCount int, lineHeight float64, lineSpacing float64) float64 {
	if lineCount == 0 {
		return 0
	}
	return float64(lineCount)*(lineHeight+lineSpacing) - lineSpacing
}
