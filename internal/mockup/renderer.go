package mockup

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/famoussince/storefront/internal/textfit"
)

// Exports are rendered at double pixel density so the stored design stays
// crisp on retina product pages.
const exportScale = 2

const lineSpacing = 1.2

var ErrNoTemplate = errors.New("mockup: template not loaded")

// Template is a fully decoded garment image ready for overlay rendering.
// Decoding happens up front: rendering against a half-read image produces a
// blank or truncated export, so a Template can only be obtained once the
// source file has been decoded completely.
type Template struct {
	img image.Image
	// VerticalOffset nudges both overlays down (or up, when negative) to
	// line the text up with where the garment sits in this particular
	// model photo.
	VerticalOffset int
}

// LoadTemplate opens and fully decodes a garment image.
func LoadTemplate(path string, verticalOffset int) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}

	return &Template{img: img, VerticalOffset: verticalOffset}, nil
}

// NewTemplate wraps an already decoded image, mainly for tests.
func NewTemplate(img image.Image, verticalOffset int) *Template {
	return &Template{img: img, VerticalOffset: verticalOffset}
}

// Overlay is one block of phrase text positioned on the garment.
type Overlay struct {
	Text string
	// XPercent is the horizontal anchor as a fraction of template width
	// (0.5 centers the text).
	XPercent float64
	// Y is the baseline position in template pixels, before the
	// template's own vertical offset is added.
	Y int
	// MaxWidth is the printable slot width in template pixels.
	MaxWidth float64
}

// Renderer draws phrase overlays onto garment templates.
type Renderer struct {
	measurer *textfit.FontMeasurer
}

func NewRenderer(measurer *textfit.FontMeasurer) *Renderer {
	return &Renderer{measurer: measurer}
}

// Render produces a PNG of the template with the given overlays applied.
// Overlay text is fitted with the shared text-fit rules before drawing.
func (r *Renderer) Render(tmpl *Template, overlays ...Overlay) ([]byte, error) {
	if tmpl == nil || tmpl.img == nil {
		return nil, ErrNoTemplate
	}

	bounds := tmpl.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scaled := image.NewRGBA(image.Rect(0, 0, w*exportScale, h*exportScale))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), tmpl.img, bounds, xdraw.Over, nil)

	dc := gg.NewContextForRGBA(scaled)
	dc.SetRGB(0, 0, 0)

	for _, ov := range overlays {
		if ov.Text == "" {
			continue
		}

		fit := textfit.Fit(r.measurer, ov.Text, ov.MaxWidth)
		face := truetype.NewFace(r.measurer.Font(), &truetype.Options{
			Size:    float64(fit.Size * exportScale),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)

		x := float64(w) * ov.XPercent * exportScale
		y := float64(ov.Y+tmpl.VerticalOffset) * exportScale
		for i, line := range fit.Lines {
			lineY := y + float64(i)*float64(fit.Size*exportScale)*lineSpacing
			dc.DrawStringAnchored(line, x, lineY, 0.5, 0.5)
		}
		face.Close()

		slog.Debug("rendered overlay",
			"text", ov.Text,
			"font_size", fit.Size,
			"wrapped", fit.Wrapped(),
		)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
