package impl

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/visionex-project/textblocks/pkg/env"
)

// Storage backends.
const (
	STORAGE_LOCAL = "local"
	STORAGE_GCS   = "gcs"
)

const (
	// Used when the reference glyph cannot be measured: line height = font size * ratio.
	FALLBACK_LINE_HEIGHT_RATIO = 1.2
	// Maximum number of characters of the first line kept in a file name.
	DEFAULT_SNIPPET_LENGTH = 50
)

// Every option recognized by the generator. Zero values are not meaningful; start from DefaultConfig.
type Config struct {
	// Directory scanned for .ttf/.otf/.ttc files. E.g., "fonts"
	FontDirectory string `toml:"font_directory"`
	// One word per line. E.g., "words.txt"
	WordsFile string `toml:"words_file"`
	// Root of the dataset; one subdirectory per font. E.g., "TrainingDataTextBlocks"
	OutputDir string `toml:"output_dir"`

	ImageWidth  int     `toml:"image_width"`
	ImageHeight int     `toml:"image_height"`
	FontSize    float64 `toml:"font_size"`

	// Maximum number of words considered for a single image.
	MaxWordsPerBlock int `toml:"max_words_per_block"`
	// Maximum number of lines drawn on a single image.
	MaxLinesPerImage int `toml:"max_lines_per_image"`
	// 1 renders every block, 50 renders every fiftieth block (49 skips between rendered blocks).
	BlockSkipInterval int `toml:"block_skip_interval"`

	// Color names (black, white, gray, ...) or hex. E.g., "#1a1a1a"
	TextColor       string `toml:"text_color"`
	BackgroundColor string `toml:"background_color"`
	// Pixels between consecutive lines.
	LineSpacing float64 `toml:"line_spacing"`
	// Pixels from the left edge of the image.
	LeftMargin    float64 `toml:"left_margin"`
	SnippetLength int     `toml:"snippet_length"`

	// Shuffle seed. 0 draws a new seed for every run.
	Seed uint64 `toml:"seed"`
	// Adds the Go fonts bundled with the binary to the fallbacks.
	BuiltinFonts bool `toml:"builtin_fonts"`

	// "local" or "gcs".
	Storage      string `toml:"storage"`
	Bucket       string `toml:"bucket"`
	BucketPrefix string `toml:"bucket_prefix"`
	// Service account key file for Google Cloud clients.
	CredentialsFile string `toml:"credentials_file"`
	// Secret Manager secret holding a service account key, used instead of CredentialsFile.
	CredentialsSecret string `toml:"credentials_secret"`
	ProjectID         string `toml:"project_id"`
}

// DefaultConfig renders 1024x256 black-on-white images at 48pt, up to 24 words on 5 lines, one block in 50.
func DefaultConfig() Config {
	return Config{
		FontDirectory:     "fonts",
		WordsFile:         "words.txt",
		OutputDir:         "TrainingDataTextBlocks",
		ImageWidth:        1024,
		ImageHeight:       256,
		FontSize:          48,
		MaxWordsPerBlock:  24,
		MaxLinesPerImage:  5,
		BlockSkipInterval: 50,
		TextColor:         "black",
		BackgroundColor:   "white",
		LineSpacing:       5,
		LeftMargin:        10,
		SnippetLength:     DEFAULT_SNIPPET_LENGTH,
		Storage:           STORAGE_LOCAL,
	}
}

// LoadConfigFile overlays the values present in a TOML file onto config.
// Keys the file sets but Config does not know are rejected to catch typos.
func LoadConfigFile(path string, config *Config) error {
	metadata, err := toml.DecodeFile(path, config)
	if err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides config with TEXTBLOCKS_* environment variables that are set.
func (c *Config) ApplyEnv() {
	c.FontDirectory = env.StringVariable("TEXTBLOCKS_FONT_DIRECTORY", c.FontDirectory)
	c.WordsFile = env.StringVariable("TEXTBLOCKS_WORDS_FILE", c.WordsFile)
	c.OutputDir = env.StringVariable("TEXTBLOCKS_OUTPUT_DIR", c.OutputDir)
	c.ImageWidth = env.IntVariable("TEXTBLOCKS_IMAGE_WIDTH", c.ImageWidth)
	c.ImageHeight = env.IntVariable("TEXTBLOCKS_IMAGE_HEIGHT", c.ImageHeight)
	c.FontSize = env.FloatVariable("TEXTBLOCKS_FONT_SIZE", c.FontSize)
	c.MaxWordsPerBlock = env.IntVariable("TEXTBLOCKS_MAX_WORDS_PER_BLOCK", c.MaxWordsPerBlock)
	c.MaxLinesPerImage = env.IntVariable("TEXTBLOCKS_MAX_LINES_PER_IMAGE", c.MaxLinesPerImage)
	c.BlockSkipInterval = env.IntVariable("TEXTBLOCKS_BLOCK_SKIP_INTERVAL", c.BlockSkipInterval)
	c.TextColor = env.StringVariable("TEXTBLOCKS_TEXT_COLOR", c.TextColor)
	c.BackgroundColor = env.StringVariable("TEXTBLOCKS_BACKGROUND_COLOR", c.BackgroundColor)
	c.LineSpacing = env.FloatVariable("TEXTBLOCKS_LINE_SPACING", c.LineSpacing)
	c.LeftMargin = env.FloatVariable("TEXTBLOCKS_LEFT_MARGIN", c.LeftMargin)
	c.SnippetLength = env.IntVariable("TEXTBLOCKS_SNIPPET_LENGTH", c.SnippetLength)
	c.Seed = env.Uint64Variable("TEXTBLOCKS_SEED", c.Seed)
	c.BuiltinFonts = env.BoolVariable("TEXTBLOCKS_BUILTIN_FONTS", c.BuiltinFonts)
	c.Storage = env.StringVariable("TEXTBLOCKS_STORAGE", c.Storage)
	c.Bucket = env.StringVariable("TEXTBLOCKS_BUCKET", c.Bucket)
	c.BucketPrefix = env.StringVariable("TEXTBLOCKS_BUCKET_PREFIX", c.BucketPrefix)
	c.CredentialsFile = env.StringVariable("TEXTBLOCKS_CREDENTIALS_FILE", c.CredentialsFile)
	c.CredentialsSecret = env.StringVariable("TEXTBLOCKS_CREDENTIALS_SECRET", c.CredentialsSecret)
	c.ProjectID = env.StringVariable("TEXTBLOCKS_PROJECT_ID", c.ProjectID)
}

// Validate reports every invalid option at once.
func (c Config) Validate() error {
	var errs []error
	if c.ImageWidth <= 0 || c.ImageHeight <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %dx%d", c.ImageWidth, c.ImageHeight))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %v", c.FontSize))
	}
	if c.MaxWordsPerBlock < 1 {
		errs = append(errs, fmt.Errorf("max words per block must be at least 1, got %d", c.MaxWordsPerBlock))
	}
	if c.MaxLinesPerImage < 1 {
		errs = append(errs, fmt.Errorf("max lines per image must be at least 1, got %d", c.MaxLinesPerImage))
	}
	if c.BlockSkipInterval < 1 {
		errs = append(errs, fmt.Errorf("block skip interval must be at least 1, got %d", c.BlockSkipInterval))
	}
	if c.LineSpacing < 0 || c.LeftMargin < 0 {
		errs = append(errs, fmt.Errorf("line spacing and left margin must not be negative"))
	}
	if c.SnippetLength < 0 {
		errs = append(errs, fmt.Errorf("snippet length must not be negative, got %d", c.SnippetLength))
	}
	if _, _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	switch c.Storage {
	case STORAGE_LOCAL:
	case STORAGE_GCS:
		if c.Bucket == "" {
			errs = append(errs, fmt.Errorf("a bucket is required for gcs storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q, expected %q or %q", c.Storage, STORAGE_LOCAL, STORAGE_GCS))
	}
	return errors.Join(errs...)
}

// Colors parses the text and background colors.
func (c Config) Colors() (text colorful.Color, background colorful.Color, err error) {
	text, err = ParseColor(c.TextColor)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, fmt.Errorf("invalid text color: %w", err)
	}
	background, err = ParseColor(c.BackgroundColor)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, fmt.Errorf("invalid background color: %w", err)
	}
	return text, background, nil
}

// The widest width a line may reach; the horizontal cursor starts at LeftMargin.
func (c Config) maxWidth() float64 {
	return float64(c.ImageWidth) - c.LeftMargin
}

var namedColors = map[string]colorful.Color{
	"black":  {R: 0, G: 0, B: 0},
	"white":  {R: 1, G: 1, B: 1},
	"gray":   {R: 0.5, G: 0.5, B: 0.5},
	"grey":   {R: 0.5, G: 0.5, B: 0.5},
	"silver": {R: 0.75, G: 0.75, B: 0.75},
	"red":    {R: 1, G: 0, B: 0},
	"green":  {R: 0, G: 0.5, B: 0},
	"blue":   {R: 0, G: 0, B: 1},
}

// ParseColor accepts a color name or a hex value with or without the leading '#'. E.g., "white", "#fafafa"
func ParseColor(value string) (colorful.Color, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if color, ok := namedColors[normalized]; ok {
		return color, nil
	}
	if !strings.HasPrefix(normalized, "#") {
		normalized = "#" + normalized
	}
	color, err := colorful.Hex(normalized)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("unknown color %q", value)
	}
	return color, nil
}
