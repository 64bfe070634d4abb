package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/visionex-project/textblocks/dataset/impl"
	"github.com/visionex-project/textblocks/dataset/impl/corpus"
	"github.com/visionex-project/textblocks/dataset/impl/font"
)

type generateFlags struct {
	fonts        string
	words        string
	out          string
	skip         int
	seed         uint64
	builtinFonts bool
	storage      string
	bucket       string
}

func newGenerateCommand(opts *options) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render text-block images for every font",
		Long: `Shuffles the word list, then walks it once per font, wrapping blocks of words onto
fixed-size images. Images are written to <out>/<font>/skip<N>_<offset>_<snippet>.png.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := opts.config
			flags.apply(cmd.Flags(), &config)
			return runGenerate(cmd.Context(), config, opts.logger)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func (f *generateFlags) register(set *pflag.FlagSet) {
	set.StringVar(&f.fonts, "fonts", "", "directory of .ttf, .otf and .ttc files")
	set.StringVar(&f.words, "words", "", "word list, one word per line")
	set.StringVar(&f.out, "out", "", "output directory")
	set.IntVar(&f.skip, "skip", 0, "render one block out of every n")
	set.Uint64Var(&f.seed, "seed", 0, "shuffle seed, 0 for a random one")
	set.BoolVar(&f.builtinFonts, "builtin-fonts", false, "also render the bundled Go fonts")
	set.StringVar(&f.storage, "storage", "", "local or gcs")
	set.StringVar(&f.bucket, "bucket", "", "GCS bucket for --storage gcs")
}

// Only flags given on the command line override the config file and environment.
func (f *generateFlags) apply(set *pflag.FlagSet, config *impl.Config) {
	if set.Changed("fonts") {
		config.FontDirectory = f.fonts
	}
	if set.Changed("words") {
		config.WordsFile = f.words
	}
	if set.Changed("out") {
		config.OutputDir = f.out
	}
	if set.Changed("skip") {
		config.BlockSkipInterval = f.skip
	}
	if set.Changed("seed") {
		config.Seed = f.seed
	}
	if set.Changed("builtin-fonts") {
		config.BuiltinFonts = f.builtinFonts
	}
	if set.Changed("storage") {
		config.Storage = f.storage
	}
	if set.Changed("bucket") {
		config.Bucket = f.bucket
	}
}

func runGenerate(ctx context.Context, config impl.Config, logger *log.Logger) error {
	runID := uuid.NewString()
	logger = logger.With("run", runID)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	words, err := corpus.Load(config.WordsFile)
	if err != nil {
		return err
	}
	seed := config.Seed
	if seed == 0 {
		seed = corpus.NewSeed()
	}
	corpus.Shuffle(words, seed)
	logger.Info("Loaded words", "count", len(words), "seed", seed)

	catalog := resolveCatalog(config, logger)
	if len(catalog) == 0 {
		return font.ErrNoFonts
	}
	logger.Info("Resolved fonts", "count", len(catalog))

	store, closeStore := newStorage(ctx, config, runID)
	defer closeStore()

	generator, err := impl.New(config, store, logger)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	summary, err := generator.Generate(ctx, words, catalog)
	printSummary(summary)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d images", summary.Rendered()))
	return nil
}

// The fonts in the font directory plus the fallbacks installed on this machine.
// A missing font directory leaves only the fallbacks.
func resolveCatalog(config impl.Config, logger *log.Logger) font.Catalog {
	catalog, err := font.Discover(config.FontDirectory)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Font directory not found, using fallback fonts only", "dir", config.FontDirectory)
	} else if err != nil {
		logger.Warn("Failed to list font directory", "err", err)
	}

	font.Merge(catalog, font.SystemFallbacks, font.SourceExists)
	if config.BuiltinFonts {
		font.Merge(catalog, font.BuiltinFallbacks, font.SourceExists)
	}
	return catalog
}
