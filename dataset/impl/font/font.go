package font

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/visionex-project/textblocks/pkg/utils"
)

// ErrNoFonts is returned when neither the font directory nor the fallbacks resolve to any font.
var ErrNoFonts = errors.New("no fonts found in the font directory and no fallbacks were loaded")

// Sources with this prefix are compiled into the binary instead of read from disk.
const embeddedPrefix = "embed:"

var fontExtensions = []string{".ttf", ".otf", ".ttc"}

var embeddedFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// SystemFallbacks are merged into every catalog when the files exist on this machine.
// Note: the first three are macOS system fonts, the last two are DejaVu on most Linux distributions.
var SystemFallbacks = Catalog{
	"Helvetica":              "/System/Library/Fonts/Helvetica.ttc",
	"TimesNewRoman_Fallback": "/System/Library/Fonts/Supplemental/Times New Roman.ttf",
	"CourierNew_Fallback":    "/System/Library/Fonts/Supplemental/Courier New.ttf",
	"DejaVuSans_Fallback":    "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"DejaVuSerif_Fallback":   "/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
}

// BuiltinFallbacks are the Go fonts shipped with golang.org/x/image.
var BuiltinFallbacks = Catalog{
	"GoRegular": embeddedPrefix + "goregular",
	"GoMono":    embeddedPrefix + "gomono",
}

// Catalog maps a font name to the source it is loaded from: a file path or an "embed:" name.
type Catalog map[string]string

// Names returns the font names in a stable order so that runs are reproducible.
func (c Catalog) Names() []string {
	return utils.SortedKeys(c)
}

// Discover lists the font files directly inside dir, keyed by file name without extension.
// A missing directory is reported with an error wrapping fs.ErrNotExist.
func Discover(dir string) (Catalog, error) {
	catalog := Catalog{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return catalog, fmt.Errorf("failed to read font directory %s: %w", dir, err)
	}

	fontFiles := utils.Filter(entries, func(entry fs.DirEntry) bool {
		return !entry.IsDir() && utils.Contains(fontExtensions, strings.ToLower(filepath.Ext(entry.Name())))
	})
	for _, entry := range fontFiles {
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		catalog[name] = filepath.Join(dir, entry.Name())
	}
	return catalog, nil
}

// Merge copies entries of src into dst unless dst already has the name.
// Entries whose source does not exist are ignored.
func Merge(dst Catalog, src Catalog, exists func(source string) bool) {
	for name, source := range src {
		if _, ok := dst[name]; ok {
			continue
		}
		if exists(source) {
			dst[name] = source
		}
	}
}

// SourceExists reports whether a catalog source can be opened.
func SourceExists(source string) bool {
	if key, ok := strings.CutPrefix(source, embeddedPrefix); ok {
		_, found := embeddedFonts[key]
		return found
	}
	_, err := os.Stat(source)
	return err == nil
}

// Font is a typeface loaded at a fixed point size.
type Font struct {
	Name   string
	Source string
	Size   float64
	Face   xfont.Face
}

// Close releases the face.
func (f *Font) Close() error {
	return f.Face.Close()
}

// Load reads and parses the font behind source and creates a face at size points (72 DPI, so points equal pixels).
func Load(name string, source string, size float64) (*Font, error) {
	data, err := readSource(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", name, err)
	}

	face, err := parseFace(data, strings.ToLower(filepath.Ext(source)), size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	return &Font{
		Name:   name,
		Source: source,
		Size:   size,
		Face:   face,
	}, nil
}

func readSource(source string) ([]byte, error) {
	if key, ok := strings.CutPrefix(source, embeddedPrefix); ok {
		data, found := embeddedFonts[key]
		if !found {
			return nil, fmt.Errorf("unknown embedded font %q", key)
		}
		return data, nil
	}
	return os.ReadFile(source)
}

// Plain TrueType goes through freetype. CFF-flavoured OpenType and collections are
// beyond what freetype parses, so those use x/image's sfnt-based opentype package.
func parseFace(data []byte, extension string, size float64) (xfont.Face, error) {
	if extension == ".ttc" {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		parsed, err := collection.Font(0)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: xfont.HintingFull})
	}

	parsed, err := truetype.Parse(data)
	if err == nil {
		return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
	}

	otf, otfErr := opentype.Parse(data)
	if otfErr != nil {
		return nil, errors.Join(err, otfErr)
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: xfont.HintingFull})
}
