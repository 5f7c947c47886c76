package text

// WrapMode selects the line breaking strategy.
type WrapMode uint8

// Wrap modes.
const (
	// WrapNone breaks only at explicit newlines.
	WrapNone WrapMode = iota
	// WrapCharacter breaks as soon as a glyph would overflow the width.
	WrapCharacter
	// WrapWhitespace breaks at the last whitespace before overflow,
	// falling back to character wrapping for unbroken words.
	WrapWhitespace
)

// String returns the mode name.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapCharacter:
		return "Character"
	case WrapWhitespace:
		return "Whitespace"
	default:
		return "unknown"
	}
}

// Info describes one laid-out line: where it starts in the text, the
// break that ended it, and its measured dimensions.
type Info struct {
	StartByte int
	StartChar int
	EndBreak  Break
	Width     float32
	Height    float32
}

// ByteRange returns the [start, end) byte span of the line's visible
// text, excluding the break token.
func (i Info) ByteRange() (start, end int) {
	return i.StartByte, i.EndBreak.Byte
}

// CharLen returns the number of characters on the line, excluding the
// break token.
func (i Info) CharLen() int {
	return i.EndBreak.Char - i.StartChar
}

// Infos lazily yields one Info per line of text. Every line is
// represented exactly once, including a trailing empty line when the
// text ends on a newline.
type Infos struct {
	text     string
	face     *Face
	maxWidth float32
	mode     WrapMode

	startByte int
	startChar int
	lastBreak *Break
	yielded   bool
	done      bool
}

// NewInfos prepares line iteration over text. maxWidth only matters for
// the wrapping modes.
func NewInfos(text string, face *Face, maxWidth float32, mode WrapMode) *Infos {
	return &Infos{text: text, face: face, maxWidth: maxWidth, mode: mode}
}

// Next yields the next line. ok=false means every line has been yielded.
func (it *Infos) Next() (Info, bool) {
	if it.done {
		return Info{}, false
	}

	var height float32
	if it.face != nil {
		height = it.face.Height()
	}

	if it.startByte >= len(it.text) {
		it.done = true
		// One final empty line exists when the text is empty or ends on
		// a newline; a text ending mid-line was fully covered by the
		// line that carried the End break.
		endsOnNewline := it.lastBreak != nil && it.lastBreak.Kind == BreakNewline
		if !it.yielded || endsOnNewline {
			return Info{
				StartByte: it.startByte,
				StartChar: it.startChar,
				EndBreak:  Break{Kind: BreakEnd, Byte: it.startByte, Char: it.startChar},
				Height:    height,
			}, true
		}
		return Info{}, false
	}

	remaining := it.text[it.startByte:]
	var br Break
	var width float32
	switch it.mode {
	case WrapCharacter:
		br, width = NextBreakByChar(remaining, it.face, it.maxWidth)
	case WrapWhitespace:
		br, width = NextBreakByWhitespace(remaining, it.face, it.maxWidth)
	default:
		br, width = NextBreak(remaining, it.face)
	}
	br = br.offset(it.startByte, it.startChar)

	info := Info{
		StartByte: it.startByte,
		StartChar: it.startChar,
		EndBreak:  br,
		Width:     width,
		Height:    height,
	}
	it.startByte = br.Byte + br.LenBytes
	it.startChar = br.Char + br.LenChars
	it.lastBreak = &br
	it.yielded = true
	if br.Kind == BreakEnd {
		it.done = true
	}
	return info, true
}

// Collect drains the iterator into a slice.
func (it *Infos) Collect() []Info {
	var infos []Info
	for {
		info, ok := it.Next()
		if !ok {
			return infos
		}
		infos = append(infos, info)
	}
}

// Lines is shorthand for laying out text and collecting every line.
func Lines(text string, face *Face, maxWidth float32, mode WrapMode) []Info {
	return NewInfos(text, face, maxWidth, mode).Collect()
}
