package impl

import (
	"image"
	"time"

	"github.com/visionex-project/textblocks/pkg/utils"
)

// The result of greedily wrapping one block of words.
type WrappedLayout struct {
	// Lines in drawing order. Each line is one or more words joined by single spaces. E.g., ["quick brown", "fox"]
	Lines []string
	// Vertical extent of the block in pixels: n*(LineHeight+spacing) - spacing, or 0 without lines.
	TotalHeight float64
	// Height of a single line box, taken from the reference glyph. E.g., 35
	LineHeight float64
	// Number of words of the block that were placed into Lines.
	WordsConsumed int
}

// A rendered canvas together with the provenance needed to name it.
type GeneratedImage struct {
	Image  image.Image
	Layout WrappedLayout
	// The font directory the image belongs to. E.g., "Helvetica"
	FontName string
	// Cursor position in the shuffled corpus when the block was taken. E.g., 1200
	Offset int
	// The block skip interval of the run. E.g., 50
	Stride int
}

// Counters for one font's pass over the corpus.
type PassStats struct {
	Font string
	// Iterations of the sampler, one per block index.
	Blocks int
	// Blocks passed over by the skip interval.
	Skipped int
	// Blocks whose first word could not be placed; each drops that word.
	Degenerate int
	// Images persisted.
	Rendered int
	// Images that failed to encode or persist.
	Failed        int
	WordsConsumed int
	Elapsed       time.Duration
}

// The outcome of a whole run.
type Summary struct {
	Passes []PassStats
	// Fonts whose pass was skipped because they failed to load.
	SkippedFonts []string
}

// Rendered returns the number of images persisted across all fonts.
func (s Summary) Rendered() int {
	return utils.Reduce(s.Passes, func(total int, pass PassStats) int {
		return total + pass.Rendered
	}, 0)
}

// Failed returns the number of images lost to encode or persistence errors across all fonts.
func (s Summary) Failed() int {
	return utils.Reduce(s.Passes, func(total int, pass PassStats) int {
		return total + pass.Failed
	}, 0)
}
