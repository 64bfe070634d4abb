package impl

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Persists the image for a wrapped block that starts at offset.
type emitFunc func(ctx context.Context, layout WrappedLayout, offset int) error

// Walks the word stream once for a single font.
type blockSampler struct {
	config  Config
	metrics FontMetrics
	emit    emitFunc
	logger  *log.Logger
}

// run partitions words into blocks of config.MaxWordsPerBlock, keeps every config.BlockSkipInterval-th block,
// and advances past each kept block by the number of words its layout consumed.
// Only context cancellation aborts the pass; emit failures are counted and the pass continues.
func (s *blockSampler) run(ctx context.Context, words []string) (PassStats, error) {
	start := time.Now()
	stats := PassStats{}
	blockSize := s.config.MaxWordsPerBlock
	stride := s.config.BlockSkipInterval

	for i, blockIndex := 0, 0; i < len(words); blockIndex++ {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		stats.Blocks++

		if blockIndex%stride != 0 {
			stats.Skipped++
			i += blockSize
			continue
		}

		block := words[i:min(i+blockSize, len(words))]
		if len(block) == 0 {
			break
		}

		layout := wrapText(block, s.metrics, s.config.maxWidth(), s.config.LeftMargin, s.config.MaxLinesPerImage, s.config.LineSpacing)
		if len(layout.Lines) == 0 || layout.WordsConsumed == 0 {
			// The word cannot be placed even on an empty line and is left out of the dataset.
			s.logger.Warn("Dropped a word wider than the canvas", "offset", i, "word", block[0])
			stats.Degenerate++
			i++
			continue
		}

		if err := s.emit(ctx, layout, i); err != nil {
			s.logger.Error("Failed to save image", "offset", i, "err", err)
			stats.Failed++
		} else {
			s.logger.Debug("Saved image", "offset", i, "lines", len(layout.Lines), "words", layout.WordsConsumed)
			stats.Rendered++
		}
		stats.WordsConsumed += layout.WordsConsumed
		i += layout.WordsConsumed
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}
