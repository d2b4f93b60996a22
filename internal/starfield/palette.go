package starfield

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the tones used to draw the field.
type Palette struct {
	Background    colorful.Color
	Neutral       colorful.Color
	NeutralAlpha  float64
	Highlight     colorful.Color
	MidpointAlpha float64
}

// DefaultPalette is black sky, translucent white stars and a yellow highlight.
func DefaultPalette() Palette {
	return Palette{
		Background:    colorful.Color{R: 0, G: 0, B: 0},
		Neutral:       colorful.Color{R: 1, G: 1, B: 1},
		NeutralAlpha:  0.5,
		Highlight:     colorful.Color{R: 1, G: 1, B: 0},
		MidpointAlpha: 0.6,
	}
}

// ParsePalette builds a Palette from hex colour strings such as "#ffff00".
func ParsePalette(background, neutral, highlight string, neutralAlpha, midpointAlpha float64) (Palette, error) {
	bg, err := colorful.Hex(background)
	if err != nil {
		return Palette{}, fmt.Errorf("background colour %q: %w", background, err)
	}
	n, err := colorful.Hex(neutral)
	if err != nil {
		return Palette{}, fmt.Errorf("neutral colour %q: %w", neutral, err)
	}
	hl, err := colorful.Hex(highlight)
	if err != nil {
		return Palette{}, fmt.Errorf("highlight colour %q: %w", highlight, err)
	}
	return Palette{
		Background:    bg,
		Neutral:       n,
		NeutralAlpha:  neutralAlpha,
		Highlight:     hl,
		MidpointAlpha: midpointAlpha,
	}, nil
}

// BackgroundColor returns the opaque clear colour.
func (p Palette) BackgroundColor() color.NRGBA {
	return toNRGBA(p.Background, 1)
}

// MidpointColor returns the colour of the trigger line.
func (p Palette) MidpointColor() color.NRGBA {
	return toNRGBA(p.Highlight, p.MidpointAlpha)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}
