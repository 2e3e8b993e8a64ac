package log

import (
	"fmt"
	"strings"
)

// Line accumulates the text of a single log statement. It is created by Begin, owned by
// the caller which created it and released by End which either writes the accumulated
// text or drops it depending on the threshold at that moment. A Line is not safe for
// concurrent use and is not meant to be reused after End.
type Line struct {
	level logLevel
	buf   strings.Builder
	ended bool
}

// Begin returns a new Line tagged with level l. It never fails and does no formatting.
func Begin(l logLevel) *Line {
	return &Line{level: l}
}

// Level returns the level the Line was created with.
func (t *Line) Level() logLevel {
	return t.level
}

// Print appends the fmt.Print rendering of the operands to the Line. The threshold is
// not consulted.
func (t *Line) Print(a ...interface{}) *Line {
	fmt.Fprint(&t.buf, a...)

	return t
}

// Printf appends the fmt.Printf rendering of the operands to the Line.
func (t *Line) Printf(format string, a ...interface{}) *Line {
	fmt.Fprintf(&t.buf, format, a...)

	return t
}

// String returns the text accumulated so far.
func (t *Line) String() string {
	return t.buf.String()
}

// End releases the Line. If the Line's level is at or below the current threshold, the
// accumulated text is written to Out() in a single write with the level prefix on each
// line and one trailing newline, otherwise it is discarded. Only the first call has any
// effect so End is safe to defer and to call explicitly.
func (t *Line) End() (n int, err error) {
	if t.ended {
		return 0, nil
	}
	t.ended = true
	s := t.buf.String()
	t.buf.Reset()
	if !If(t.level) {
		return 0, nil
	}

	return prefixAndPrintLines(s, prefixes[t.level])
}
