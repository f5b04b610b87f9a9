package phonefield

// EditState is the cursor-protection engine. It models a text field
// whose leading Prefix characters ("+" plus the dial code) must survive
// every edit. Each intent method is a pure transition: it returns the
// next state and never fails — disallowed edits come back unchanged.
//
// Selection is the half-open range [SelStart, SelEnd); a collapsed
// range is a caret. States are renormalized before every transition,
// so degenerate input (inverted or out-of-range selections) is safe.
type EditState struct {
	Text     string
	Prefix   int // protected prefix length, 1 + len(dialCode)
	SelStart int
	SelEnd   int
	Limit    int // max digits after the prefix, 0 = unbounded
}

// Caret reports the collapsed cursor position, or the selection end
// when a range is active.
func (s EditState) Caret() int {
	return s.SelEnd
}

// HasSelection reports whether a non-empty range is selected.
func (s EditState) HasSelection() bool {
	return s.SelStart != s.SelEnd
}

// norm orders and clamps the selection into [0, len(Text)] and the
// prefix into the text. Every transition starts here.
func (s EditState) norm() EditState {
	if s.Prefix < 0 {
		s.Prefix = 0
	}
	if s.Prefix > len(s.Text) {
		s.Prefix = len(s.Text)
	}
	if s.SelStart > s.SelEnd {
		s.SelStart, s.SelEnd = s.SelEnd, s.SelStart
	}
	s.SelStart = clamp(s.SelStart, 0, len(s.Text))
	s.SelEnd = clamp(s.SelEnd, 0, len(s.Text))
	return s
}

// collapse places the caret at pos with no selection.
func (s EditState) collapse(pos int) EditState {
	pos = clamp(pos, 0, len(s.Text))
	s.SelStart, s.SelEnd = pos, pos
	return s
}

// replaceRange substitutes Text[start:end] with ins, honoring Limit by
// truncating the insertion, and collapses the caret after the inserted
// text. The caller guarantees start >= Prefix.
func (s EditState) replaceRange(start, end int, ins string) EditState {
	if s.Limit > 0 {
		room := s.Prefix + s.Limit - (len(s.Text) - (end - start))
		if room < 0 {
			room = 0
		}
		if len(ins) > room {
			ins = ins[:room]
		}
	}
	s.Text = s.Text[:start] + ins + s.Text[end:]
	return s.collapse(start + len(ins))
}

// InsertRune types a single character at the caret, replacing any
// active selection. Only ASCII digits are accepted; anything else is
// rejected unchanged. A selection reaching into the protected zone
// keeps the prefix and replaces only the part after it; a caret inside
// the prefix is moved to its end before inserting.
func (s EditState) InsertRune(r rune) EditState {
	s = s.norm()
	if r < '0' || r > '9' {
		return s
	}
	start, end := s.SelStart, s.SelEnd
	if start < s.Prefix {
		start = s.Prefix
	}
	if end < start {
		end = start
	}
	return s.replaceRange(start, end, string(r))
}

// Backspace deletes backward. With a caret at or before the prefix
// boundary the edit is rejected. A selection that spans into the
// protected zone loses only its unprotected part, and the caret
// collapses to the prefix boundary.
func (s EditState) Backspace() EditState {
	s = s.norm()
	if s.HasSelection() {
		return s.deleteSelection()
	}
	if s.SelEnd <= s.Prefix {
		return s
	}
	return s.replaceRange(s.SelEnd-1, s.SelEnd, "")
}

// Delete deletes forward. A caret inside the protected zone is a
// no-op; a selection follows the same protection rule as Backspace.
func (s EditState) Delete() EditState {
	s = s.norm()
	if s.HasSelection() {
		return s.deleteSelection()
	}
	if s.SelEnd < s.Prefix {
		return s
	}
	if s.SelEnd >= len(s.Text) {
		return s
	}
	return s.replaceRange(s.SelEnd, s.SelEnd+1, "")
}

// deleteSelection removes the unprotected part of the selection.
func (s EditState) deleteSelection() EditState {
	start, end := s.SelStart, s.SelEnd
	if end <= s.Prefix {
		// selection entirely inside the protected zone
		return s.collapse(s.Prefix)
	}
	if start < s.Prefix {
		start = s.Prefix
	}
	return s.replaceRange(start, end, "")
}

// Cut removes the unprotected part of the selection and returns it for
// the clipboard. The protected zone never leaves the field: a
// selection overlapping it yields only the substring after the prefix.
func (s EditState) Cut() (EditState, string) {
	s = s.norm()
	if !s.HasSelection() {
		return s, ""
	}
	start, end := s.SelStart, s.SelEnd
	if start < s.Prefix {
		start = s.Prefix
	}
	if start >= end {
		return s.collapse(s.Prefix), ""
	}
	clip := s.Text[start:end]
	return s.replaceRange(start, end, ""), clip
}

// Paste inserts external text at the selection. The text is sanitized
// to digits first. A target range overlapping the protected zone is
// clamped: the prefix is preserved and only the part after it is
// replaced. The caret lands after the inserted digits.
func (s EditState) Paste(text string) EditState {
	s = s.norm()
	digits := digitsOf(text)
	start, end := s.SelStart, s.SelEnd
	if start < s.Prefix {
		start = s.Prefix
	}
	if end < start {
		end = start
	}
	return s.replaceRange(start, end, digits)
}

// Home moves the caret to the prefix boundary — never to true zero.
// With shift the selection extends from the current position back to
// the boundary.
func (s EditState) Home(shift bool) EditState {
	s = s.norm()
	if !shift {
		return s.collapse(s.Prefix)
	}
	anchor := s.SelEnd
	if anchor < s.Prefix {
		anchor = s.Prefix
	}
	s.SelStart, s.SelEnd = s.Prefix, anchor
	return s
}

// End moves the caret past the last character, or extends the
// selection there with shift.
func (s EditState) End(shift bool) EditState {
	s = s.norm()
	if !shift {
		return s.collapse(len(s.Text))
	}
	if s.SelStart < s.Prefix {
		s.SelStart = s.Prefix
	}
	s.SelEnd = len(s.Text)
	return s
}

// ArrowLeft moves the caret one left, clamped to the prefix boundary.
// With shift, leftward extension stops at the boundary.
func (s EditState) ArrowLeft(shift bool) EditState {
	s = s.norm()
	if shift {
		if s.SelStart <= s.Prefix {
			s.SelStart = s.Prefix
			return s
		}
		s.SelStart--
		return s
	}
	if s.HasSelection() {
		return s.collapse(maxInt(s.SelStart, s.Prefix))
	}
	return s.collapse(maxInt(s.SelEnd-1, s.Prefix))
}

// ArrowRight moves the caret one right, or extends the selection.
func (s EditState) ArrowRight(shift bool) EditState {
	s = s.norm()
	if shift {
		if s.SelStart < s.Prefix {
			s.SelStart = s.Prefix
		}
		if s.SelEnd < len(s.Text) {
			s.SelEnd++
		}
		return s
	}
	if s.HasSelection() {
		return s.collapse(s.SelEnd)
	}
	if s.SelEnd < len(s.Text) {
		return s.collapse(s.SelEnd + 1)
	}
	return s
}

// Click places the caret from a pointer position. Positions inside the
// protected zone remap to the prefix boundary.
func (s EditState) Click(pos int) EditState {
	s = s.norm()
	return s.collapse(maxInt(clamp(pos, 0, len(s.Text)), s.Prefix))
}

// Select applies a pointer-drag selection. A range starting inside the
// protected zone is remapped to begin at the prefix boundary; a range
// ending inside it collapses to a caret at the boundary.
func (s EditState) Select(start, end int) EditState {
	s = s.norm()
	if start > end {
		start, end = end, start
	}
	start = clamp(start, 0, len(s.Text))
	end = clamp(end, 0, len(s.Text))
	if end <= s.Prefix {
		return s.collapse(s.Prefix)
	}
	if start < s.Prefix {
		start = s.Prefix
	}
	s.SelStart, s.SelEnd = start, end
	return s
}

// Focus corrects the caret after the field gains focus: platform
// default placement may land inside the protected zone, so anything
// before the boundary snaps to it. Widgets run this on the tick after
// the focus event, once selection state has settled.
func (s EditState) Focus() EditState {
	s = s.norm()
	if s.SelEnd < s.Prefix {
		return s.collapse(s.Prefix)
	}
	if s.SelStart < s.Prefix {
		s.SelStart = s.Prefix
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
