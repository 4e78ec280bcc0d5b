package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/scoring"
)

// ErrInvalidProfile is returned when a card is requested for a profile
// that cannot be drawn. Callers resolve profiles through the registry
// first, so this indicates a caller bug.
var ErrInvalidProfile = errors.New("invalid profile")

// Card dimensions in pixels.
const (
	Width  = 1080
	Height = 1920
)

const (
	margin   = 100
	contentW = Width - 2*margin
	centerX  = Width / 2

	accentH = 12

	emblemY      = 360
	emblemR      = 130
	emojiSize    = 150
	moonR        = 88
	labelY       = 196
	codeY        = 580
	codeTracking = 18
	nameY        = 680
	subtitleY    = 748
	subtitleLH   = 48

	cardTop  = 850
	cardX0   = 90
	cardX1   = Width - 90
	cardPad  = 40
	rowH     = 92
	trackX   = 130
	trackW   = Width - 2*trackX
	barH     = 18
	barLabel = 30
	barTop   = 46

	descGap      = 90
	descLH       = 52
	descMaxShort = 6
	descMaxLong  = 12
	tagGap       = 70
	tagLH        = 42
	tagMax       = 2

	wordmarkY = 1826
	hashtagY  = 1874
)

const (
	cardLabel = "YOUR NIGHT TYPE"
	wordmark  = "NIGHT PERSONALITY"
	hashtag   = "#NightPersonality"
	tagSep    = "  ·  "
)

// Renderer draws result cards. It is safe for concurrent use.
//
// The default Go fonts carry no emoji, so with them the emblem is always a
// drawn crescent badge. To show the profile emoji, add a font that has
// monochrome outline glyphs for it through LoadFontSet (the fonts.emoji
// config key). Colour bitmap emoji fonts are not rasterized.
type Renderer struct {
	fonts *FontSet
}

// NewRenderer returns a renderer using fonts, or the default Go fonts when
// fonts is nil.
func NewRenderer(fonts *FontSet) *Renderer {
	if fonts == nil {
		fonts = DefaultFontSet()
	}
	return &Renderer{fonts: fonts}
}

// Render draws the card for code and encodes it as PNG. A nil vector
// omits the score bars.
func (r *Renderer) Render(code quiz.Code, p archetype.Profile, v scoring.Vector) ([]byte, error) {
	img, err := r.RenderImage(code, p, v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render.Render: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderImage draws the card for code onto a fresh canvas.
func (r *Renderer) RenderImage(code quiz.Code, p archetype.Profile, v scoring.Vector) (*image.RGBA, error) {
	if err := checkProfile(code, p); err != nil {
		return nil, fmt.Errorf("render.RenderImage: %w", err)
	}
	c := newCanvas(Width, Height, r.fonts)
	drawBackground(c)
	y, err := drawHeader(c, p)
	if err != nil {
		return nil, fmt.Errorf("render.RenderImage: %w", err)
	}
	maxDesc := descMaxLong
	if v != nil {
		if y, err = drawScores(c, v); err != nil {
			return nil, fmt.Errorf("render.RenderImage: %w", err)
		}
		maxDesc = descMaxShort
	}
	if y, err = drawDescription(c, p.Description, y+descGap, maxDesc); err != nil {
		return nil, fmt.Errorf("render.RenderImage: %w", err)
	}
	if err := drawTags(c, p.Tags, y+tagGap); err != nil {
		return nil, fmt.Errorf("render.RenderImage: %w", err)
	}
	if err := drawFooter(c); err != nil {
		return nil, fmt.Errorf("render.RenderImage: %w", err)
	}
	return c.img, nil
}

func checkProfile(code quiz.Code, p archetype.Profile) error {
	switch {
	case p.Code == "" || strings.TrimSpace(p.Name) == "":
		return ErrInvalidProfile
	case !code.Valid():
		return fmt.Errorf("code %q: %w", code, ErrInvalidProfile)
	case code != p.Code:
		return fmt.Errorf("code %s does not match profile %s: %w", code, p.Code, ErrInvalidProfile)
	}
	return nil
}
