package impl

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/visionex-project/textblocks/dataset/impl/corpus"
	"github.com/visionex-project/textblocks/dataset/impl/font"
	"github.com/visionex-project/textblocks/dataset/impl/storage"
)

type generator struct {
	config Config

	// Where the images of every font are persisted, one directory per font.
	storage storage.Client

	// Draws wrapped layouts with the configured canvas and colors.
	renderer *renderer

	logger *log.Logger
}

// New validates config and builds a generator that persists images through storage.
func New(config Config, storage storage.Client, logger *log.Logger) (*generator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	renderer, err := newRenderer(config)
	if err != nil {
		return nil, err
	}
	return &generator{
		config:   config,
		storage:  storage,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// Generate runs one independent pass over words for every font in the catalog, in name order.
// A font that fails to load is logged and skipped. Cancelling ctx stops the run after the current block
// and returns the passes completed so far together with the context error.
func (g *generator) Generate(ctx context.Context, words []string, catalog font.Catalog) (Summary, error) {
	summary := Summary{}
	if len(words) == 0 {
		return summary, corpus.ErrEmptyCorpus
	}
	if len(catalog) == 0 {
		return summary, font.ErrNoFonts
	}

	for _, name := range catalog.Names() {
		stats, err := g.generateFont(ctx, words, name, catalog[name])
		if ctxErr := ctx.Err(); ctxErr != nil {
			summary.Passes = append(summary.Passes, stats)
			return summary, ctxErr
		}
		if err != nil {
			g.logger.Error("Skipping font", "font", name, "err", err)
			summary.SkippedFonts = append(summary.SkippedFonts, name)
			continue
		}
		g.logger.Info("Finished font", "font", name, "images", stats.Rendered, "failed", stats.Failed, "dropped", stats.Degenerate, "elapsed", stats.Elapsed)
		summary.Passes = append(summary.Passes, stats)
	}
	return summary, nil
}

func (g *generator) generateFont(ctx context.Context, words []string, name string, source string) (PassStats, error) {
	stats := PassStats{Font: name}
	f, err := font.Load(name, source, g.config.FontSize)
	if err != nil {
		return stats, err
	}
	defer f.Close()

	if err := g.storage.EnsureDir(ctx, name); err != nil {
		return stats, fmt.Errorf("failed to prepare output for font %s: %w", name, err)
	}

	g.logger.Info("Generating font", "font", name, "source", source)
	sampler := &blockSampler{
		config:  g.config,
		metrics: newFaceMetrics(f),
		emit: func(ctx context.Context, layout WrappedLayout, offset int) error {
			return g.save(ctx, GeneratedImage{
				Image:    g.renderer.render(layout, f.Face),
				Layout:   layout,
				FontName: name,
				Offset:   offset,
				Stride:   g.config.BlockSkipInterval,
			})
		},
		logger: g.logger.With("font", name),
	}
	stats, err = sampler.run(ctx, words)
	stats.Font = name
	return stats, err
}

func (g *generator) save(ctx context.Context, img GeneratedImage) error {
	data, err := encodePNG(img.Image)
	if err != nil {
		return err
	}
	return g.storage.SaveBytes(ctx, img.FontName, img.Filename(g.config.SnippetLength), data)
}
