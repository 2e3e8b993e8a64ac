package mock

import (
	"errors"
	"strings"
)

// IOWriter captures everything written to it so tests can examine the output of log and
// the command line functions.
type IOWriter struct {
	line   []byte
	writes int
}

func (t *IOWriter) Reset() {
	t.line = make([]byte, 0)
	t.writes = 0
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.line = append(t.line, b...)
	t.writes++

	return len(b), nil
}

func (t *IOWriter) String() string {
	return string(t.line)
}

func (t *IOWriter) Len() int {
	return len(t.line)
}

// Lines returns the number of newline terminated lines captured so far.
func (t *IOWriter) Lines() int {
	return strings.Count(string(t.line), "\n")
}

// Writes returns the number of Write calls since the last Reset. Used to confirm that a
// multi-line log entry arrives in one piece.
func (t *IOWriter) Writes() int {
	return t.writes
}

// ErrWriteFailed is returned by FailWriter.
var ErrWriteFailed = errors.New("mock: write failed")

// FailWriter is an io.Writer which rejects every write.
type FailWriter struct{}

func (FailWriter) Write(b []byte) (int, error) {
	return 0, ErrWriteFailed
}
