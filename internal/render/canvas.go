package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type faceKey struct {
	style style
	size  float64
}

// canvas is the drawing context of a single render. It owns the target
// image and the font faces, neither of which outlives the call.
type canvas struct {
	img   *image.RGBA
	fonts *FontSet
	buf   sfnt.Buffer
	faces map[faceKey]*faceChain
}

func newCanvas(w, h int, fonts *FontSet) *canvas {
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		fonts: fonts,
		faces: make(map[faceKey]*faceChain),
	}
}

func (c *canvas) face(s style, size float64) (*faceChain, error) {
	k := faceKey{s, size}
	if fc, ok := c.faces[k]; ok {
		return fc, nil
	}
	fc, err := newFaceChain(c.fonts, s, size, &c.buf)
	if err != nil {
		return nil, err
	}
	c.faces[k] = fc
	return fc, nil
}

// fitFace returns the largest face between lo and hi, stepping down by
// step, at which text fits in maxW. It returns the lo face when nothing fits.
func (c *canvas) fitFace(s style, hi, lo, step float64, text string, maxW int) (*faceChain, error) {
	for size := hi; size > lo; size -= step {
		fc, err := c.face(s, size)
		if err != nil {
			return nil, err
		}
		if fc.width(text) <= maxW {
			return fc, nil
		}
	}
	return c.face(s, lo)
}

// fillRows paints a vertical gradient one row at a time.
func (c *canvas) fillRows(stops []colorful.Color) {
	b := c.img.Bounds()
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y-b.Min.Y) / float64(h-1)
		}
		row := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(c.img, row, image.NewUniform(toNRGBA(blendStops(stops, t), 255)), image.Point{}, draw.Src)
	}
}

// radialGlow blends col over a disc with alpha falling off quadratically
// from peak at the center to zero at radius.
func (c *canvas) radialGlow(cx, cy, radius int, col colorful.Color, peak float64) {
	r := image.Rect(cx-radius, cy-radius, cx+radius, cy+radius).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	rf := float64(radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := math.Hypot(float64(x-cx)+0.5, float64(y-cy)+0.5)
			if d >= rf {
				continue
			}
			f := 1 - d/rf
			mask.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(255 * peak * f * f))})
		}
	}
	draw.DrawMask(c.img, r, image.NewUniform(toNRGBA(col, 255)), image.Point{}, mask, r.Min, draw.Over)
}

// fill composites src over r. src is sampled at absolute coordinates.
func (c *canvas) fill(r image.Rectangle, src image.Image) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, src, r.Min, draw.Over)
}

// roundRect composites src over a rounded rectangle. r must lie inside
// the canvas.
func (c *canvas) roundRect(r image.Rectangle, radius float32, src image.Image) {
	if r.Empty() || !r.In(c.img.Bounds()) {
		return
	}
	w, h := float32(r.Dx()), float32(r.Dy())
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	roundRectPath(z, w, h, radius)
	z.Draw(c.img, r, src, r.Min)
}

// circle composites src over a disc centered at (cx, cy).
func (c *canvas) circle(cx, cy, radius int, src image.Image) {
	r := image.Rect(cx-radius, cy-radius, cx+radius, cy+radius)
	if r.Empty() || !r.In(c.img.Bounds()) {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	rf := float32(radius)
	roundRectPath(z, 2*rf, 2*rf, rf)
	z.Draw(c.img, r, src, r.Min)
}

// roundRectPath adds a closed rounded rectangle at the origin. Corners are
// cubic approximations of quarter circles.
func roundRectPath(z *vector.Rasterizer, w, h, radius float32) {
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	k := radius * (1 - 0.5523)
	z.MoveTo(radius, 0)
	z.LineTo(w-radius, 0)
	z.CubeTo(w-k, 0, w, k, w, radius)
	z.LineTo(w, h-radius)
	z.CubeTo(w, h-k, w-k, h, w-radius, h)
	z.LineTo(radius, h)
	z.CubeTo(k, h, 0, h-k, 0, h-radius)
	z.LineTo(0, radius)
	z.CubeTo(0, k, k, 0, radius, 0)
	z.ClosePath()
}

// crescent composites src over a moon shape: the disc at (cx, cy) minus a
// disc of the same radius shifted by (dx, dy). Edges are antialiased by
// distance.
func (c *canvas) crescent(cx, cy, radius, dx, dy int, src image.Image) {
	r := image.Rect(cx-radius, cy-radius, cx+radius, cy+radius).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	rf := float64(radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			in := clamp01(rf - math.Hypot(px-float64(cx), py-float64(cy)) + 0.5)
			out := clamp01(rf - math.Hypot(px-float64(cx+dx), py-float64(cy+dy)) + 0.5)
			if a := in * (1 - out); a > 0 {
				mask.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(255 * a))})
			}
		}
	}
	draw.DrawMask(c.img, r, src, r.Min, mask, r.Min, draw.Over)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// text draws s with its baseline origin at (x, y).
func (c *canvas) text(fc *faceChain, s string, x, y int, col color.Color) {
	drawRuns(c.img, fc, s, fixed.P(x, y), image.NewUniform(col))
}

// textCentered draws s horizontally centered on cx.
func (c *canvas) textCentered(fc *faceChain, s string, cx, y int, col color.Color) {
	c.text(fc, s, cx-fc.width(s)/2, y, col)
}

// textRight draws s so that it ends at x.
func (c *canvas) textRight(fc *faceChain, s string, x, y int, col color.Color) {
	c.text(fc, s, x-fc.width(s), y, col)
}

// textTracked draws s centered on cx with extra spacing between runes.
func (c *canvas) textTracked(fc *faceChain, s string, cx, y, tracking int, col color.Color) {
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}
	total := fc.width(s) + tracking*(len(runes)-1)
	x := fixed.I(cx - total/2)
	src := image.NewUniform(col)
	for _, r := range runes {
		ch := string(r)
		drawRuns(c.img, fc, ch, fixed.Point26_6{X: x, Y: fixed.I(y)}, src)
		x += fc.advance(ch) + fixed.I(tracking)
	}
}

// textGradient draws s centered on cx, filled with src sampled at absolute
// canvas coordinates. The glyphs are rasterized into a mask first since
// font.Drawer samples its source from the origin.
func (c *canvas) textGradient(fc *faceChain, s string, cx, y int, src image.Image) {
	w := fc.width(s)
	m := fc.metrics()
	x := cx - w/2
	r := image.Rect(x, y-m.Ascent.Ceil(), x+w+1, y+m.Descent.Ceil()).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	drawRuns(mask, fc, s, fixed.P(x, y), image.Opaque)
	draw.DrawMask(c.img, r, src, r.Min, mask, r.Min, draw.Over)
}

func drawRuns(dst draw.Image, fc *faceChain, s string, dot fixed.Point26_6, src image.Image) {
	d := font.Drawer{Dst: dst, Src: src, Dot: dot}
	for _, r := range fc.runs(s) {
		d.Face = fc.faces[r.face]
		d.DrawString(r.text)
	}
}
