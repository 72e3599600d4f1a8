package app

import "unicode/utf8"

// Line is the input line being typed. The console owns it; the engine only
// ever sees its String(). The limit is in bytes, the unit the engine's
// MaxInput uses; the cursor is a rune index.
type Line struct {
	buf    []rune
	cursor int
	size   int
	limit  int
}

func NewLine(limit int) *Line {
	return &Line{limit: limit}
}

// Insert puts r at the cursor. It reports false, leaving the line unchanged,
// once the line is full.
func (l *Line) Insert(r rune) bool {
	n := utf8.RuneLen(r)
	if n < 0 {
		n = utf8.RuneLen(utf8.RuneError)
	}
	if l.limit > 0 && l.size+n > l.limit {
		return false
	}
	l.size += n
	if l.cursor == len(l.buf) {
		l.buf = append(l.buf, r)
		l.cursor++
		return true
	}
	l.buf = append(l.buf, 0)
	copy(l.buf[l.cursor+1:], l.buf[l.cursor:])
	l.buf[l.cursor] = r
	l.cursor++
	return true
}

// Set replaces the line with s, truncating at the limit. The cursor ends up
// after the last rune kept.
func (l *Line) Set(s string) bool {
	l.Clear()
	for _, r := range s {
		if !l.Insert(r) {
			return false
		}
	}
	return true
}

func (l *Line) Backspace() {
	if l.cursor == 0 {
		return
	}
	l.cursor--
	l.remove(l.cursor)
}

// Delete removes the rune under the cursor.
func (l *Line) Delete() {
	if l.cursor >= len(l.buf) {
		return
	}
	l.remove(l.cursor)
}

func (l *Line) remove(i int) {
	l.size -= len(string(l.buf[i]))
	l.buf = append(l.buf[:i], l.buf[i+1:]...)
}

func (l *Line) Left() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *Line) Right() {
	if l.cursor < len(l.buf) {
		l.cursor++
	}
}

func (l *Line) Home() { l.cursor = 0 }
func (l *Line) End()  { l.cursor = len(l.buf) }

func (l *Line) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(l.buf) {
		i = len(l.buf)
	}
	l.cursor = i
}

func (l *Line) Clear() {
	l.buf = l.buf[:0]
	l.cursor = 0
	l.size = 0
}

func (l *Line) String() string { return string(l.buf) }
func (l *Line) Cursor() int    { return l.cursor }
func (l *Line) Len() int       { return len(l.buf) }

// Size is the length of String() in bytes.
func (l *Line) Size() int { return l.size }
