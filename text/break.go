package text

import "unicode"

// BreakKind tags why a line ended.
type BreakKind uint8

// Break kinds.
const (
	// BreakWrap ends a line because the next glyph would overflow the
	// maximum width.
	BreakWrap BreakKind = iota
	// BreakNewline ends a line at an explicit newline token.
	BreakNewline
	// BreakEnd ends the final line at the end of the text.
	BreakEnd
)

// String returns the kind name.
func (k BreakKind) String() string {
	switch k {
	case BreakWrap:
		return "Wrap"
	case BreakNewline:
		return "Newline"
	case BreakEnd:
		return "End"
	default:
		return "unknown"
	}
}

// Break records where and why a line ended. Byte and Char locate the
// break; LenBytes and LenChars measure the break token itself, which the
// next line skips (a newline's bytes, one wrapped-over whitespace rune,
// or zero for a mid-word wrap).
type Break struct {
	Kind     BreakKind
	Byte     int
	Char     int
	LenBytes int
	LenChars int
}

// offset shifts the break by a line's start position, making a
// line-relative break absolute.
func (b Break) offset(byteOff, charOff int) Break {
	b.Byte += byteOff
	b.Char += charOff
	return b
}

// newlineAt returns the break for a newline token beginning at text[i],
// or ok=false. Both "\n" and "\r\n" count.
func newlineAt(text string, i, chars int) (Break, bool) {
	switch {
	case text[i] == '\n':
		return Break{Kind: BreakNewline, Byte: i, Char: chars, LenBytes: 1, LenChars: 1}, true
	case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
		return Break{Kind: BreakNewline, Byte: i, Char: chars, LenBytes: 2, LenChars: 2}, true
	default:
		return Break{}, false
	}
}

// NextBreak scans text without wrapping, returning the first newline
// break or the end of text, along with the accumulated line width.
func NextBreak(text string, face *Face) (Break, float32) {
	var width float32
	var prev rune
	chars := 0
	for i, r := range text {
		if br, ok := newlineAt(text, i, chars); ok {
			return br, width
		}
		width += advance(face, prev, r)
		prev = r
		chars++
	}
	return Break{Kind: BreakEnd, Byte: len(text), Char: chars}, width
}

// NextBreakByChar scans text, breaking the instant the accumulated width
// would exceed maxWidth. The overflowing character starts the next line;
// nothing is skipped. Newlines always take precedence.
func NextBreakByChar(text string, face *Face, maxWidth float32) (Break, float32) {
	var width float32
	var prev rune
	chars := 0
	for i, r := range text {
		if br, ok := newlineAt(text, i, chars); ok {
			return br, width
		}
		adv := advance(face, prev, r)
		if chars > 0 && width+adv > maxWidth {
			return Break{Kind: BreakWrap, Byte: i, Char: chars}, width
		}
		width += adv
		prev = r
		chars++
	}
	return Break{Kind: BreakEnd, Byte: len(text), Char: chars}, width
}

// NextBreakByWhitespace scans text, breaking at the most recent
// whitespace before the point where the accumulated width would exceed
// maxWidth. Exactly one whitespace rune is skipped into the next line.
// A line with no whitespace before overflow falls back to the
// character-wrap break (zero skip). Newlines always take precedence.
func NextBreakByWhitespace(text string, face *Face, maxWidth float32) (Break, float32) {
	var width float32
	var prev rune
	chars := 0

	lastSpaceByte := -1
	var lastSpaceChar int
	var lastSpaceLen int
	var widthAtSpace float32

	for i, r := range text {
		if br, ok := newlineAt(text, i, chars); ok {
			return br, width
		}
		adv := advance(face, prev, r)
		if chars > 0 && width+adv > maxWidth {
			if lastSpaceByte >= 0 {
				return Break{
					Kind:     BreakWrap,
					Byte:     lastSpaceByte,
					Char:     lastSpaceChar,
					LenBytes: lastSpaceLen,
					LenChars: 1,
				}, widthAtSpace
			}
			return Break{Kind: BreakWrap, Byte: i, Char: chars}, width
		}
		if unicode.IsSpace(r) {
			lastSpaceByte = i
			lastSpaceChar = chars
			lastSpaceLen = runeLen(r)
			widthAtSpace = width
		}
		width += adv
		prev = r
		chars++
	}
	return Break{Kind: BreakEnd, Byte: len(text), Char: chars}, width
}

// advance returns r's advance width plus its kerning against the
// previous rune. A nil face lays out every rune at unit width, letting
// break logic run without font data.
func advance(face *Face, prev, r rune) float32 {
	if face == nil {
		return 1
	}
	adv := face.GlyphAdvance(r)
	if prev != 0 {
		adv += face.PairKerning(prev, r)
	}
	return adv
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
