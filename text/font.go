// Package text implements line breaking, glyph layout, and cursor
// resolution for drawn text. Breaking is lazy: lines are produced one at
// a time by an iterator that accumulates kerning-aware advance widths.
package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/draw/geom"
)

// DefaultFontSize is the point size used when a Face is created without
// an explicit size.
const DefaultFontSize = 24

// Font is a parsed font file. A Font is read-only and may back any
// number of Faces.
type Font struct {
	sfnt   *opentype.Font
	shaped *gtfont.Font
}

// Parse parses TTF/OTF font data.
func Parse(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	shaped, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Font{sfnt: f, shaped: shaped.Font}, nil
}

// Metrics are a face's vertical metrics in pixels.
type Metrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// Height returns the vertical distance between consecutive baselines.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// FaceOption configures a Face.
type FaceOption func(*Face)

// WithSize sets the face's point size.
func WithSize(size float32) FaceOption {
	return func(f *Face) {
		if size > 0 {
			f.size = size
		}
	}
}

// Face is a Font scaled to a size. It owns a reusable glyph buffer and
// is not safe for concurrent use; create one Face per goroutine.
type Face struct {
	font *Font
	size float32
	buf  sfnt.Buffer
}

// NewFace creates a face at DefaultFontSize unless WithSize overrides it.
func NewFace(f *Font, opts ...FaceOption) *Face {
	face := &Face{font: f, size: DefaultFontSize}
	for _, opt := range opts {
		opt(face)
	}
	return face
}

// Size returns the face's point size.
func (f *Face) Size() float32 {
	return f.size
}

// Font returns the face's backing font.
func (f *Face) Font() *Font {
	return f.font
}

func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// GlyphIndex returns the face's glyph for r, or 0 (the missing-glyph
// notdef) when the font has none.
func (f *Face) GlyphIndex(r rune) sfnt.GlyphIndex {
	idx, err := f.font.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return idx
}

// GlyphAdvance returns the horizontal advance of r in pixels.
func (f *Face) GlyphAdvance(r rune) float32 {
	adv, err := f.font.sfnt.GlyphAdvance(&f.buf, f.GlyphIndex(r), f.ppem(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// PairKerning returns the kerning adjustment between two consecutive
// runes in pixels. Unkerned pairs yield 0.
func (f *Face) PairKerning(a, b rune) float32 {
	k, err := f.font.sfnt.Kern(&f.buf, f.GlyphIndex(a), f.GlyphIndex(b), f.ppem(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// GlyphBounds returns the bounding box of r in pixels, relative to the
// glyph origin on the baseline.
func (f *Face) GlyphBounds(r rune) (min, max geom.Vec2, ok bool) {
	bounds, _, err := f.font.sfnt.GlyphBounds(&f.buf, f.GlyphIndex(r), f.ppem(), font.HintingFull)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, false
	}
	return geom.V2(fixedToFloat(bounds.Min.X), fixedToFloat(bounds.Min.Y)),
		geom.V2(fixedToFloat(bounds.Max.X), fixedToFloat(bounds.Max.Y)), true
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	m, err := f.font.sfnt.Metrics(&f.buf, f.ppem(), font.HintingFull)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat(m.Height) - ascent - descent,
	}
}

// Height returns the face's baseline-to-baseline distance.
func (f *Face) Height() float32 {
	return f.Metrics().Height()
}

// fixedToFloat converts a 26.6 fixed-point value to float32 pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
