package render

import (
	"fmt"
	"os"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSet holds parsed fonts. Parsed fonts are shared read-only between
// renders; faces are created per render.
type FontSet struct {
	Regular *opentype.Font
	Bold    *opentype.Font
	Mono    *opentype.Font
	// Fallbacks are consulted in order for glyphs the primary font lacks,
	// such as emoji or CJK text.
	Fallbacks []*opentype.Font
}

var goFonts = mustParseGoFonts()

func mustParseGoFonts() FontSet {
	parse := func(name string, data []byte) *opentype.Font {
		f, err := opentype.Parse(data)
		if err != nil {
			panic(fmt.Sprintf("render: parse %s: %v", name, err))
		}
		return f
	}
	return FontSet{
		Regular: parse("goregular", goregular.TTF),
		Bold:    parse("gobold", gobold.TTF),
		Mono:    parse("gomonobold", gomonobold.TTF),
	}
}

// DefaultFontSet returns the Go font family with no fallbacks.
func DefaultFontSet() *FontSet {
	fs := goFonts
	return &fs
}

// LoadFontSet returns the default set extended with fallback fonts read
// from paths (TTF or OTF). Empty paths are skipped. A fallback is only used
// for a string when it has outline glyphs for every rune, so an emoji font
// must be a monochrome outline font; without one the card emblem falls back
// to a crescent badge.
func LoadFontSet(paths ...string) (*FontSet, error) {
	fs := DefaultFontSet()
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("render.LoadFontSet: %w", err)
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("render.LoadFontSet: parse %s: %w", p, err)
		}
		fs.Fallbacks = append(fs.Fallbacks, f)
	}
	return fs, nil
}

type style int

const (
	styleRegular style = iota
	styleBold
	styleMono
)

func (fs *FontSet) primary(s style) *opentype.Font {
	switch s {
	case styleBold:
		return fs.Bold
	case styleMono:
		return fs.Mono
	default:
		return fs.Regular
	}
}

// faceChain is a primary face plus fallbacks at one size. Each rune is
// drawn with the first face whose font has a glyph for it.
type faceChain struct {
	fonts []*opentype.Font
	faces []font.Face
	buf   *sfnt.Buffer
}

func newFaceChain(fs *FontSet, s style, size float64, buf *sfnt.Buffer) (*faceChain, error) {
	fonts := append([]*opentype.Font{fs.primary(s)}, fs.Fallbacks...)
	c := &faceChain{fonts: fonts, buf: buf}
	for _, f := range fonts {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("new face: %w", err)
		}
		c.faces = append(c.faces, face)
	}
	return c, nil
}

// pick returns the index of the face to draw r with, or -1 when r is a
// zero-width joiner or selector that no font covers.
func (c *faceChain) pick(r rune) int {
	for i, f := range c.fonts {
		if idx, err := f.GlyphIndex(c.buf, r); err == nil && idx != 0 {
			return i
		}
	}
	if isIgnorable(r) {
		return -1
	}
	return 0
}

// covers reports whether every visible rune of s has a glyph in the chain.
func (c *faceChain) covers(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if isIgnorable(r) {
			continue
		}
		found := false
		for _, f := range c.fonts {
			if idx, err := f.GlyphIndex(c.buf, r); err == nil && idx != 0 {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func isIgnorable(r rune) bool {
	return r == '‍' || unicode.Is(unicode.Variation_Selector, r)
}

type run struct {
	face int
	text string
}

// runs splits s into maximal runs drawn with the same face.
func (c *faceChain) runs(s string) []run {
	var out []run
	start, cur := 0, -2
	for i, r := range s {
		f := c.pick(r)
		if f != cur {
			if cur >= 0 && i > start {
				out = append(out, run{cur, s[start:i]})
			}
			start, cur = i, f
		}
	}
	if cur >= 0 && start < len(s) {
		out = append(out, run{cur, s[start:]})
	}
	return out
}

// advance measures s in 26.6 fixed point.
func (c *faceChain) advance(s string) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, r := range c.runs(s) {
		w += font.MeasureString(c.faces[r.face], r.text)
	}
	return w
}

// width measures s in whole pixels.
func (c *faceChain) width(s string) int { return c.advance(s).Ceil() }

func (c *faceChain) metrics() font.Metrics { return c.faces[0].Metrics() }
