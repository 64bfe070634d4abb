package impl

import (
	"github.com/fogleman/gg"
	xfont "golang.org/x/image/font"

	"github.com/visionex-project/textblocks/dataset/impl/font"
)

// The glyph whose ink height defines the line height of a font.
const REFERENCE_GLYPH = 'H'

// Measures text for a single font at a single size.
type FontMetrics interface {
	// Advance width of s in pixels.
	TextWidth(s string) float64
	// Height of one line box in pixels; always positive.
	LineHeight() float64
}

type faceMetrics struct {
	measure    *gg.Context
	lineHeight float64
}

func newFaceMetrics(f *font.Font) *faceMetrics {
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(f.Face)
	return &faceMetrics{
		measure:    measure,
		lineHeight: referenceLineHeight(f.Face, f.Size),
	}
}

func (m *faceMetrics) TextWidth(s string) float64 {
	width, _ := m.measure.MeasureString(s)
	return width
}

func (m *faceMetrics) LineHeight() float64 {
	return m.lineHeight
}

// The ink height of REFERENCE_GLYPH, or size * FALLBACK_LINE_HEIGHT_RATIO when the face cannot measure it.
func referenceLineHeight(face xfont.Face, size float64) float64 {
	bounds, _, ok := face.GlyphBounds(REFERENCE_GLYPH)
	if ok {
		height := float64(bounds.Max.Y-bounds.Min.Y) / 64
		if height > 0 {
			return height
		}
	}
	return size * FALLBACK_LINE_HEIGHT_RATIO
}
