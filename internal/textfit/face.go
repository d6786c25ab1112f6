package textfit

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// FontMeasurer measures text width using a parsed truetype font.
type FontMeasurer struct {
	font *truetype.Font
}

// NewFontMeasurer parses fontData (TTF bytes) into a measurer.
func NewFontMeasurer(fontData []byte) (*FontMeasurer, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontMeasurer{font: f}, nil
}

// NewFontMeasurerFromFile reads and parses a TTF file, falling back to the
// bundled Go Regular face when path is empty.
func NewFontMeasurerFromFile(path string) (*FontMeasurer, error) {
	if path == "" {
		return NewFontMeasurer(goregular.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return NewFontMeasurer(data)
}

// Font exposes the parsed font so renderers can share it.
func (m *FontMeasurer) Font() *truetype.Font {
	return m.font
}

// Width returns the advance width of text at the given size in pixels.
func (m *FontMeasurer) Width(text string, size float64) float64 {
	face := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	var width fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			width += face.Kern(prev, r)
		}
		advance, ok := face.GlyphAdvance(r)
		if ok {
			width += advance
		}
		prev = r
	}

	return float64(width) / 64
}
