package impl

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	xfont "golang.org/x/image/font"
)

// Paints wrapped layouts onto fixed-size canvases.
type renderer struct {
	width       int
	height      int
	leftMargin  float64
	lineSpacing float64
	text        colorful.Color
	background  colorful.Color
}

func newRenderer(config Config) (*renderer, error) {
	text, background, err := config.Colors()
	if err != nil {
		return nil, err
	}
	return &renderer{
		width:       config.ImageWidth,
		height:      config.ImageHeight,
		leftMargin:  config.LeftMargin,
		lineSpacing: config.LineSpacing,
		text:        text,
		background:  background,
	}, nil
}

// render draws the layout vertically centered, each line anchored at its baseline start.
// Lines that do not fit are drawn outside the canvas and clipped.
func (r *renderer) render(layout WrappedLayout, face xfont.Face) image.Image {
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(r.background)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetColor(r.text)

	yOffset := verticalOffset(float64(r.height), layout.TotalHeight)
	for k, line := range layout.Lines {
		dc.DrawStringAnchored(line, r.leftMargin, linePosition(yOffset, k, layout.LineHeight, r.lineSpacing), 0, 0)
	}
	return dc.Image()
}

// The y coordinate at which a block of totalHeight starts so that it is centered on the canvas.
func verticalOffset(canvasHeight float64, totalHeight float64) float64 {
	return (canvasHeight - totalHeight) / 2
}

// The y coordinate of line k of a block starting at yOffset.
func linePosition(yOffset float64, k int, lineHeight float64, lineSpacing float64) float64 {
	return yOffset + float64(k)*(lineHeight+lineSpacing)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
