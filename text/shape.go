package text

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Xs iterates the valid cursor x positions of one laid-out line. A line
// with n glyphs has n+1 positions: before the first glyph, between each
// pair, and after the last.
type Xs struct {
	positions []float32
	i         int
}

// Next yields the next cursor x position. ok=false when exhausted.
func (x *Xs) Next() (float32, bool) {
	if x.i >= len(x.positions) {
		return 0, false
	}
	p := x.positions[x.i]
	x.i++
	return p, true
}

// Len returns the number of cursor positions.
func (x *Xs) Len() int {
	return len(x.positions)
}

// At returns the cursor position at index i.
func (x *Xs) At(i int) float32 {
	return x.positions[i]
}

// LineXs pairs one line's vertical placement with its cursor positions.
type LineXs struct {
	// Y is the top of the line, with lines stacking downward from 0.
	Y  float32
	Xs Xs
	// RTL reports whether the line contains right-to-left runs, in
	// which case cursor positions are not monotonic in x.
	RTL bool
}

// CursorXs shapes one line of text and returns its cursor x positions,
// one more than the shaped glyph count, relative to the line's left
// edge. Shaping runs through HarfBuzz, so ligatures and complex scripts
// produce glyph counts that differ from the rune count.
func (f *Face) CursorXs(line string) []float32 {
	runes := []rune(line)
	if len(runes) == 0 {
		return []float32{0}
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.font.shaped),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	positions := make([]float32, 0, len(out.Glyphs)+1)
	var x float32
	positions = append(positions, 0)
	for _, g := range out.Glyphs {
		x += fixedToFloat(g.XAdvance)
		positions = append(positions, x)
	}
	return positions
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// containsRTL reports whether the bidi algorithm finds a right-to-left
// run in the line.
func containsRTL(line string) bool {
	if line == "" {
		return false
	}
	var p bidi.Paragraph
	if _, err := p.SetString(line); err != nil {
		return false
	}
	ordering, err := p.Order()
	if err != nil {
		return false
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			return true
		}
	}
	return false
}

// XysPerLine lays out every line's cursor positions and vertical
// placement. A nil face lays runes out at unit advances, matching the
// break functions' nil-face behavior.
func XysPerLine(text string, infos []Info, face *Face) []LineXs {
	out := make([]LineXs, len(infos))
	var top float32
	for i, info := range infos {
		s, e := info.ByteRange()
		line := text[s:e]
		var positions []float32
		if face == nil {
			n := utf8.RuneCountInString(line)
			positions = make([]float32, n+1)
			for j := range positions {
				positions[j] = float32(j)
			}
		} else {
			positions = face.CursorXs(line)
		}
		out[i] = LineXs{Y: top, Xs: Xs{positions: positions}, RTL: containsRTL(line)}
		top += info.Height
	}
	return out
}

// ClosestCursorIndexOnLine picks the cursor position nearest to x. With
// monotonic positions the scan stops at the first non-improving
// candidate; lines holding right-to-left runs are not monotonic, so the
// caller must pass monotonic=false to force a full scan.
func ClosestCursorIndexOnLine(x float32, xs Xs, monotonic bool) int {
	best := 0
	bestDist := float32(-1)
	for i, p := range xs.positions {
		d := x - p
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
			continue
		}
		if monotonic {
			return best
		}
	}
	return best
}

// ClosestCursorIndex resolves a point to the nearest cursor Index over
// the whole laid-out text. x and y are relative to the text's top-left.
func ClosestCursorIndex(x, y float32, text string, infos []Info, face *Face) (Index, bool) {
	line, ok := ClosestLine(y, infos)
	if !ok {
		return Index{}, false
	}
	lines := XysPerLine(text, infos, face)
	lx := lines[line]
	char := ClosestCursorIndexOnLine(x, lx.Xs, !lx.RTL)
	return Index{Line: line, Char: char}, true
}
