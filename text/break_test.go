package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func regularFace(t *testing.T) *Face {
	t.Helper()
	f, err := Parse(goregular.TTF)
	require.NoError(t, err)
	return NewFace(f, WithSize(16))
}

func TestLineBreakRoundTrip(t *testing.T) {
	const input = "ab cd\nef"
	infos := Lines(input, nil, 0, WrapNone)
	require.Len(t, infos, 2)

	first := infos[0]
	s, e := first.ByteRange()
	assert.Equal(t, "ab cd", input[s:e])
	assert.Equal(t, BreakNewline, first.EndBreak.Kind)
	assert.Equal(t, 1, first.EndBreak.LenBytes)

	second := infos[1]
	s, e = second.ByteRange()
	assert.Equal(t, "ef", input[s:e])
	assert.Equal(t, BreakEnd, second.EndBreak.Kind)

	// Concatenating every line's bytes plus the skipped break tokens
	// reconstructs the input exactly.
	var b strings.Builder
	for _, info := range infos {
		s, e := info.ByteRange()
		b.WriteString(input[s:e])
		b.WriteString(input[e : e+info.EndBreak.LenBytes])
	}
	assert.Equal(t, input, b.String())
}

func TestInfosTrailingNewline(t *testing.T) {
	infos := Lines("ab\n", nil, 0, WrapNone)
	require.Len(t, infos, 2, "a trailing newline implies a final empty line")
	assert.Equal(t, 0, infos[1].CharLen())
	assert.Equal(t, BreakEnd, infos[1].EndBreak.Kind)
}

func TestInfosEmptyText(t *testing.T) {
	infos := Lines("", nil, 0, WrapNone)
	require.Len(t, infos, 1)
	assert.Equal(t, 0, infos[0].CharLen())
}

func TestInfosCRLF(t *testing.T) {
	infos := Lines("ab\r\ncd", nil, 0, WrapNone)
	require.Len(t, infos, 2)
	assert.Equal(t, 2, infos[0].EndBreak.LenBytes)
	assert.Equal(t, 2, infos[0].EndBreak.LenChars)
	assert.Equal(t, 4, infos[1].StartByte)
}

func TestCharWrapZeroSkip(t *testing.T) {
	// Unit advances: every rune is 1 wide.
	infos := Lines("abcdef", nil, 2.5, WrapCharacter)
	require.Len(t, infos, 3)
	for _, info := range infos[:2] {
		assert.Equal(t, BreakWrap, info.EndBreak.Kind)
		assert.Equal(t, 0, info.EndBreak.LenBytes, "char wrap must skip nothing")
		assert.Equal(t, 2, info.CharLen())
	}
	assert.Equal(t, "ef", "abcdef"[infos[2].StartByte:infos[2].EndBreak.Byte])
}

func TestWhitespaceWrapSkipsOneSpace(t *testing.T) {
	const input = "ab cd"
	infos := Lines(input, nil, 4, WrapWhitespace)
	require.Len(t, infos, 2)

	first := infos[0]
	assert.Equal(t, BreakWrap, first.EndBreak.Kind)
	assert.Equal(t, 1, first.EndBreak.LenBytes, "exactly one whitespace rune is skipped")
	s, e := first.ByteRange()
	assert.Equal(t, "ab", input[s:e])
	s, e = infos[1].ByteRange()
	assert.Equal(t, "cd", input[s:e])
}

func TestWhitespaceWrapFallsBackToChar(t *testing.T) {
	// A single unbroken word longer than the width must wrap with zero
	// skip rather than loop or skip characters.
	br, _ := NextBreakByWhitespace("abcdef", nil, 3.5)
	assert.Equal(t, BreakWrap, br.Kind)
	assert.Equal(t, 0, br.LenBytes)
	assert.Equal(t, 0, br.LenChars)
	assert.Equal(t, 3, br.Char)
}

func TestNewlinePrecedesWrap(t *testing.T) {
	// The newline wins even when the width budget is long gone.
	br, _ := NextBreakByChar("a\nbcdef", nil, 0.5)
	assert.Equal(t, BreakNewline, br.Kind)
	assert.Equal(t, 1, br.Byte)
}

func TestWrapAlwaysConsumesAtLeastOneChar(t *testing.T) {
	// A glyph wider than the whole budget still lands on its line;
	// otherwise iteration would never advance.
	infos := Lines("ab", nil, 0.25, WrapCharacter)
	require.Len(t, infos, 2)
	assert.Equal(t, 1, infos[0].CharLen())
	assert.Equal(t, 1, infos[1].CharLen())
}

func TestBreakWidthsWithRealFont(t *testing.T) {
	face := regularFace(t)
	br, width := NextBreak("Hello", face)
	assert.Equal(t, BreakEnd, br.Kind)
	assert.Equal(t, 5, br.Char)
	assert.Greater(t, width, float32(0))

	// Accumulated width grows with the text.
	_, wider := NextBreak("Hello, world", face)
	assert.Greater(t, wider, width)
}

func TestWhitespaceWrapWithRealFont(t *testing.T) {
	face := regularFace(t)
	full := "the quick brown fox"
	_, fullWidth := NextBreak(full, face)

	infos := Lines(full, face, fullWidth/2, WrapWhitespace)
	require.Greater(t, len(infos), 1, "half the width must force at least one wrap")
	for _, info := range infos {
		assert.LessOrEqual(t, info.Width, fullWidth/2+1e-3)
	}

	// Round trip through break tokens.
	var b strings.Builder
	for _, info := range infos {
		s, e := info.ByteRange()
		b.WriteString(full[s:e])
		b.WriteString(full[e : e+info.EndBreak.LenBytes])
	}
	assert.Equal(t, full, b.String())
}
