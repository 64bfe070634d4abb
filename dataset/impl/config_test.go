package impl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.ImageWidth = 0 }, "image size"},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, "font size"},
		{"empty blocks", func(c *Config) { c.MaxWordsPerBlock = 0 }, "max words per block"},
		{"no lines", func(c *Config) { c.MaxLinesPerImage = 0 }, "max lines per image"},
		{"zero skip interval", func(c *Config) { c.BlockSkipInterval = 0 }, "block skip interval"},
		{"negative spacing", func(c *Config) { c.LineSpacing = -1 }, "line spacing"},
		{"unknown color", func(c *Config) { c.TextColor = "octarine" }, "invalid text color"},
		{"gcs without bucket", func(c *Config) { c.Storage = STORAGE_GCS }, "bucket is required"},
		{"unknown storage", func(c *Config) { c.Storage = "s3" }, "unknown storage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateReportsAllErrors(t *testing.T) {
	config := DefaultConfig()
	config.ImageHeight = -1
	config.BlockSkipInterval = 0
	err := config.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"image size", "block skip interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %v, want it to mention %q", err, want)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textblocks.toml")
	content := `
font_directory = "/opt/fonts"
image_width = 512
font_size = 32.5
block_skip_interval = 1
background_color = "#fafafa"
seed = 42
builtin_fonts = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	if err := LoadConfigFile(path, &config); err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}

	if config.FontDirectory != "/opt/fonts" || config.ImageWidth != 512 || config.FontSize != 32.5 {
		t.Errorf("config = %+v", config)
	}
	if config.BlockSkipInterval != 1 || config.BackgroundColor != "#fafafa" || config.Seed != 42 || !config.BuiltinFonts {
		t.Errorf("config = %+v", config)
	}
	if config.ImageHeight != 256 || config.MaxLinesPerImage != 5 {
		t.Errorf("unset keys changed: ImageHeight = %v, MaxLinesPerImage = %v", config.ImageHeight, config.MaxLinesPerImage)
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textblocks.toml")
	if err := os.WriteFile(path, []byte("image_widht = 512\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	err := LoadConfigFile(path, &config)
	if err == nil || !strings.Contains(err.Error(), "image_widht") {
		t.Errorf("LoadConfigFile() error = %v, want unknown key image_widht", err)
	}
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("TEXTBLOCKS_OUTPUT_DIR", "/data/out")
	t.Setenv("TEXTBLOCKS_MAX_WORDS_PER_BLOCK", "12")
	t.Setenv("TEXTBLOCKS_LINE_SPACING", "2.5")
	t.Setenv("TEXTBLOCKS_SEED", "99")
	t.Setenv("TEXTBLOCKS_BUILTIN_FONTS", "true")
	t.Setenv("TEXTBLOCKS_STORAGE", "gcs")
	t.Setenv("TEXTBLOCKS_BUCKET", "textblocks-dataset")

	config := DefaultConfig()
	config.ApplyEnv()

	if config.OutputDir != "/data/out" || config.MaxWordsPerBlock != 12 || config.LineSpacing != 2.5 {
		t.Errorf("config = %+v", config)
	}
	if config.Seed != 99 || !config.BuiltinFonts || config.Storage != STORAGE_GCS || config.Bucket != "textblocks-dataset" {
		t.Errorf("config = %+v", config)
	}
	if config.ImageWidth != 1024 {
		t.Errorf("ImageWidth = %v, want default 1024", config.ImageWidth)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		value   string
		wantHex string
		wantErr bool
	}{
		{value: "white", wantHex: "#ffffff"},
		{value: " Black ", wantHex: "#000000"},
		{value: "gray", wantHex: "#808080"},
		{value: "#ff0000", wantHex: "#ff0000"},
		{value: "0000ff", wantHex: "#0000ff"},
		{value: "#1A1A1A", wantHex: "#1a1a1a"},
		{value: "octarine", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseColor(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Hex() != tt.wantHex {
				t.Errorf("ParseColor() = %v, want %v", got.Hex(), tt.wantHex)
			}
		})
	}
}
