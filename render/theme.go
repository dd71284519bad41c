package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the surface colors. Card bodies blend toward Background by
// the view's alpha, which stands in for transparency on a terminal
type Theme struct {
	Background tcell.Color
	CardBody   tcell.Color
	CardBorder tcell.Color
	CardTitle  tcell.Color
	Selected   tcell.Color
}

// DefaultTheme returns a dark scheme legible on 256-color terminals
func DefaultTheme() Theme {
	return Theme{
		Background: tcell.NewRGBColor(16, 16, 24),
		CardBody:   tcell.NewRGBColor(48, 52, 70),
		CardBorder: tcell.NewRGBColor(110, 118, 150),
		CardTitle:  tcell.NewRGBColor(220, 224, 232),
		Selected:   tcell.NewRGBColor(96, 140, 220),
	}
}

// blendToward mixes c toward target in Lab space by 1-alpha. Full alpha
// returns c unchanged; zero alpha returns the target
func blendToward(c, target tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return target
	}
	src := toColorful(c)
	dst := toColorful(target)
	mixed := src.BlendLab(dst, 1-alpha).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
