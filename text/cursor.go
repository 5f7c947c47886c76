package text

import "unicode"

// Index is a cursor position: a line and a character offset into that
// line's cursor positions. A line with n characters has n+1 cursor
// positions; Char == n places the cursor after the last character.
// Indices order lexicographically by (Line, Char).
type Index struct {
	Line int
	Char int
}

// Before reports whether i precedes other.
func (i Index) Before(other Index) bool {
	return i.Line < other.Line || (i.Line == other.Line && i.Char < other.Char)
}

// lineLen returns the cursor capacity of a line (character count).
func lineLen(info Info) int {
	return info.CharLen()
}

// IndexBeforeChar locates the cursor position preceding the glyph at the
// global character index. The scan treats each line's end position as
// inclusive, so an index exactly at a line end resolves to that line
// rather than the next.
func IndexBeforeChar(infos []Info, charIndex int) (Index, bool) {
	for line, info := range infos {
		if charIndex >= info.StartChar && charIndex <= info.EndBreak.Char {
			return Index{Line: line, Char: charIndex - info.StartChar}, true
		}
	}
	return Index{}, false
}

// GlobalChar returns the index's position as a global character offset.
func (i Index) GlobalChar(infos []Info) (int, bool) {
	if i.Line < 0 || i.Line >= len(infos) {
		return 0, false
	}
	return infos[i.Line].StartChar + i.Char, true
}

// Previous returns the cursor position one step back, moving to the end
// of the previous line at a line start. ok=false at the very beginning.
func (i Index) Previous(infos []Info) (Index, bool) {
	if i.Char > 0 {
		return Index{Line: i.Line, Char: i.Char - 1}, true
	}
	if i.Line > 0 && i.Line <= len(infos) {
		return Index{Line: i.Line - 1, Char: lineLen(infos[i.Line-1])}, true
	}
	return Index{}, false
}

// Next returns the cursor position one step forward, moving to the start
// of the next line at a line end. ok=false at the very end.
func (i Index) Next(infos []Info) (Index, bool) {
	if i.Line < 0 || i.Line >= len(infos) {
		return Index{}, false
	}
	if i.Char < lineLen(infos[i.Line]) {
		return Index{Line: i.Line, Char: i.Char + 1}, true
	}
	if i.Line+1 < len(infos) {
		return Index{Line: i.Line + 1, Char: 0}, true
	}
	return Index{}, false
}

// PreviousWordStart returns the cursor position at the start of the word
// before the index, skipping any whitespace run in between. ok=false
// when there is nowhere earlier to move.
func (i Index) PreviousWordStart(text string, infos []Info) (Index, bool) {
	runes := []rune(text)
	cur := i
	moved := false
	// Step back over the whitespace run, then over the word itself.
	for {
		r, exists := runeBefore(runes, infos, cur)
		if !exists || !unicode.IsSpace(r) {
			break
		}
		prev, ok := cur.Previous(infos)
		if !ok {
			break
		}
		cur = prev
		moved = true
	}
	for {
		r, exists := runeBefore(runes, infos, cur)
		if !exists || unicode.IsSpace(r) {
			break
		}
		prev, ok := cur.Previous(infos)
		if !ok {
			break
		}
		cur = prev
		moved = true
	}
	if !moved {
		return Index{}, false
	}
	return cur, true
}

// NextWordEnd returns the cursor position at the end of the word after
// the index, skipping any whitespace run in between. ok=false when
// there is nowhere later to move.
func (i Index) NextWordEnd(text string, infos []Info) (Index, bool) {
	runes := []rune(text)
	cur := i
	moved := false
	// Step forward over the whitespace run, then over the word itself.
	for {
		r, exists := runeAfter(runes, infos, cur)
		if !exists || !unicode.IsSpace(r) {
			break
		}
		next, ok := cur.Next(infos)
		if !ok {
			break
		}
		cur = next
		moved = true
	}
	for {
		r, exists := runeAfter(runes, infos, cur)
		if !exists || unicode.IsSpace(r) {
			break
		}
		next, ok := cur.Next(infos)
		if !ok {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return Index{}, false
	}
	return cur, true
}

// runeBefore returns the rune immediately before the cursor position.
func runeBefore(runes []rune, infos []Info, i Index) (rune, bool) {
	g, ok := i.GlobalChar(infos)
	if !ok || g <= 0 || g > len(runes) {
		return 0, false
	}
	return runes[g-1], true
}

// runeAfter returns the rune immediately after the cursor position.
func runeAfter(runes []rune, infos []Info, i Index) (rune, bool) {
	g, ok := i.GlobalChar(infos)
	if !ok || g < 0 || g >= len(runes) {
		return 0, false
	}
	return runes[g], true
}

// ClosestLine picks the line whose vertical range contains y, assuming
// lines stack downward from y=0 at each line's Height. When y falls
// outside every range, the scan keeps the line whose vertical center is
// nearest and stops at the first non-improving candidate; lines are in
// monotonic vertical order, so the first regression is final.
func ClosestLine(y float32, infos []Info) (int, bool) {
	if len(infos) == 0 {
		return 0, false
	}
	best := 0
	bestDist := float32(-1)
	var top float32
	for i, info := range infos {
		bottom := top + info.Height
		if y >= top && y < bottom {
			return i, true
		}
		center := (top + bottom) / 2
		dist := y - center
		if dist < 0 {
			dist = -dist
		}
		if bestDist >= 0 && dist >= bestDist {
			return best, true
		}
		best = i
		bestDist = dist
		top = bottom
	}
	return best, true
}
