package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	bgTop       = mustHex("#2a0f45")
	bgBottom    = mustHex("#07060b")
	glowColor   = mustHex("#a855f7")
	moonLight   = mustHex("#fef08a")
	moonShade   = mustHex("#fdba74")
	accentStops = []colorful.Color{
		mustHex("#9333ea"),
		mustHex("#ec4899"),
		mustHex("#fb923c"),
	}
	barStops = accentStops[:2]
)

var (
	textStrong = color.NRGBA{255, 255, 255, 235}
	textBody   = color.NRGBA{255, 255, 255, 210}
	textMuted  = color.NRGBA{255, 255, 255, 150}
	textFaint  = color.NRGBA{255, 255, 255, 110}
	codeColor  = color.NRGBA{0xd8, 0xb4, 0xfe, 255}
	tagColor   = color.NRGBA{0xf9, 0xa8, 0xd4, 220}
	trackColor = color.NRGBA{255, 255, 255, 31}
	cardColor  = color.NRGBA{255, 255, 255, 16}
)

// tokenColors maps a profile color token to the two ends of its gradient.
var tokenColors = map[string][2]string{
	"violet":  {"#8b5cf6", "#ec4899"},
	"amber":   {"#f59e0b", "#f97316"},
	"indigo":  {"#6366f1", "#8b5cf6"},
	"teal":    {"#14b8a6", "#0ea5e9"},
	"rose":    {"#f43f5e", "#f97316"},
	"sky":     {"#0ea5e9", "#6366f1"},
	"crimson": {"#dc2626", "#9333ea"},
	"ocean":   {"#0284c7", "#14b8a6"},
	"lilac":   {"#c084fc", "#f0abfc"},
	"pink":    {"#ec4899", "#f9a8d4"},
	"purple":  {"#9333ea", "#4f46e5"},
	"blush":   {"#fb7185", "#fda4af"},
	"coral":   {"#fb7185", "#fb923c"},
	"magenta": {"#d946ef", "#ec4899"},
	"cyan":    {"#06b6d4", "#a855f7"},
	"peach":   {"#fdba74", "#fb7185"},
}

const defaultToken = "violet"

func tokenStops(token string) []colorful.Color {
	pair, ok := tokenColors[token]
	if !ok {
		pair = tokenColors[defaultToken]
	}
	return []colorful.Color{mustHex(pair[0]), mustHex(pair[1])}
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{r, g, b, alpha}
}

// blendStops returns the color at t in [0,1] along evenly spaced stops,
// interpolating in Lab space.
func blendStops(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	seg := t * float64(len(stops)-1)
	i := int(seg)
	return stops[i].BlendLab(stops[i+1], seg-float64(i))
}

// linearGradient is an image whose color varies along one axis between
// from and to, precomputed as a lookup table. Outside that span it
// extends the end colors. Coordinates are absolute canvas coordinates.
type linearGradient struct {
	bounds   image.Rectangle
	vertical bool
	from     int
	lut      []color.NRGBA
}

func newLinearGradient(bounds image.Rectangle, from, to int, vertical bool, stops []colorful.Color, alpha uint8) *linearGradient {
	n := to - from
	if n < 1 {
		n = 1
	}
	lut := make([]color.NRGBA, n)
	for i := range lut {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		lut[i] = toNRGBA(blendStops(stops, t), alpha)
	}
	return &linearGradient{bounds: bounds, vertical: vertical, from: from, lut: lut}
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *linearGradient) Bounds() image.Rectangle { return g.bounds }

func (g *linearGradient) At(x, y int) color.Color {
	p := x
	if g.vertical {
		p = y
	}
	i := p - g.from
	if i < 0 {
		i = 0
	}
	if i >= len(g.lut) {
		i = len(g.lut) - 1
	}
	return g.lut[i]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad color " + s)
	}
	return c
}
