package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/scoring"
)

func drawBackground(c *canvas) {
	c.fillRows([]colorful.Color{bgTop, bgBottom})
	c.radialGlow(centerX, Height/6, 720, glowColor, 0.35)
	c.fill(image.Rect(0, 0, Width, accentH),
		newLinearGradient(c.img.Bounds(), 0, Width, false, accentStops, 255))
}

// drawHeader draws the label, emblem, code, name, and subtitle. It returns
// the baseline of the last line drawn.
func drawHeader(c *canvas, p archetype.Profile) (int, error) {
	label, err := c.face(styleRegular, 28)
	if err != nil {
		return 0, err
	}
	c.textTracked(label, cardLabel, centerX, labelY, 6, textMuted)

	if err := drawEmblem(c, p); err != nil {
		return 0, err
	}

	code, err := c.face(styleMono, 56)
	if err != nil {
		return 0, err
	}
	c.textTracked(code, string(p.Code), centerX, codeY, codeTracking, codeColor)

	name, err := c.fitFace(styleBold, 84, 44, 4, p.Name, contentW)
	if err != nil {
		return 0, err
	}
	// Second pass one pixel over thickens the bold face.
	x := centerX - (name.width(p.Name)+1)/2
	c.text(name, p.Name, x, nameY, textStrong)
	c.text(name, p.Name, x+1, nameY, textStrong)

	sub, err := c.face(styleRegular, 36)
	if err != nil {
		return 0, err
	}
	y := nameY
	lines := clampLines(wrapText(p.Subtitle, contentW, sub.width), 2, contentW, sub.width)
	for i, line := range lines {
		y = subtitleY + i*subtitleLH
		c.textCentered(sub, line, centerX, y, textBody)
	}
	return y, nil
}

// drawEmblem draws a tinted disc with the profile emoji, or a crescent
// moon when no loaded font has the emoji's glyphs.
func drawEmblem(c *canvas, p archetype.Profile) error {
	bounds := c.img.Bounds()
	disc := newLinearGradient(bounds, emblemY-emblemR, emblemY+emblemR, true, tokenStops(p.Color), 72)
	c.circle(centerX, emblemY, emblemR, disc)
	c.circle(centerX, emblemY, emblemR-18, image.NewUniform(color.NRGBA{255, 255, 255, 12}))

	fc, err := c.face(styleRegular, emojiSize)
	if err != nil {
		return err
	}
	if fc.covers(p.Emoji) {
		m := fc.metrics()
		c.textCentered(fc, p.Emoji, centerX, emblemY+(m.Ascent.Ceil()-m.Descent.Ceil())/2, textStrong)
		return nil
	}
	moon := newLinearGradient(bounds, emblemY-moonR, emblemY+moonR, true, []colorful.Color{moonLight, moonShade}, 255)
	c.crescent(centerX, emblemY, moonR, moonR*2/5, -moonR*3/10, moon)
	return nil
}

// barFill is the fill width for an axis sum on a track of the given
// width: (v+6)/12 of the track, never thinner than the bar is tall and
// never past the end of the track.
func barFill(v, track int) int {
	w := track * (v + 6) / 12
	if w < barH {
		w = barH
	}
	if w > track {
		w = track
	}
	return w
}

// drawScores draws one bar per axis inside a rounded card and returns the
// card's bottom edge. The positive trait is on the left.
func drawScores(c *canvas, v scoring.Vector) (int, error) {
	axes := quiz.Axes()
	bottom := cardTop + 2*cardPad + len(axes)*rowH
	c.roundRect(image.Rect(cardX0, cardTop, cardX1, bottom), 36, image.NewUniform(cardColor))

	trait, err := c.face(styleBold, 28)
	if err != nil {
		return 0, err
	}
	axisName, err := c.face(styleRegular, 22)
	if err != nil {
		return 0, err
	}
	fill := newLinearGradient(c.img.Bounds(), trackX, trackX+trackW, false, barStops, 255)
	track := image.NewUniform(trackColor)

	for i, a := range axes {
		top := cardTop + cardPad + i*rowH
		val := v.Get(a)
		pos, neg := a.Traits()
		posCol, negCol := textMuted, textStrong
		if val >= 0 {
			posCol, negCol = textStrong, textMuted
		}
		base := top + barLabel
		c.text(trait, pos, trackX, base, posCol)
		c.textRight(trait, neg, trackX+trackW, base, negCol)
		c.textCentered(axisName, strings.ToUpper(a.Label()), centerX, base, textFaint)

		y0 := top + barTop
		c.roundRect(image.Rect(trackX, y0, trackX+trackW, y0+barH), barH/2, track)
		c.roundRect(image.Rect(trackX, y0, trackX+barFill(val, trackW), y0+barH), barH/2, fill)
	}
	return bottom, nil
}

// drawDescription wraps s into at most maxLines lines starting at baseline
// y and returns the last baseline.
func drawDescription(c *canvas, s string, y, maxLines int) (int, error) {
	fc, err := c.face(styleRegular, 34)
	if err != nil {
		return 0, err
	}
	last := y
	lines := clampLines(wrapText(s, contentW, fc.width), maxLines, contentW, fc.width)
	for i, line := range lines {
		last = y + i*descLH
		c.textCentered(fc, line, centerX, last, textBody)
	}
	return last, nil
}

func drawTags(c *canvas, tags []string, y int) error {
	if len(tags) == 0 {
		return nil
	}
	fc, err := c.face(styleRegular, 30)
	if err != nil {
		return err
	}
	items := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			items = append(items, t)
		}
	}
	lines := clampLines(wrapItems(items, tagSep, contentW, fc.width), tagMax, contentW, fc.width)
	for i, line := range lines {
		c.textCentered(fc, line, centerX, y+i*tagLH, tagColor)
	}
	return nil
}

func drawFooter(c *canvas) error {
	wm, err := c.face(styleBold, 40)
	if err != nil {
		return err
	}
	w := wm.width(wordmark)
	grad := newLinearGradient(c.img.Bounds(), centerX-w/2, centerX+w/2, false, accentStops, 255)
	c.textGradient(wm, wordmark, centerX, wordmarkY, grad)

	ht, err := c.face(styleRegular, 26)
	if err != nil {
		return err
	}
	c.textCentered(ht, hashtag, centerX, hashtagY, textFaint)
	return nil
}
