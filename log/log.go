package log

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

type logLevel int

const (
	TerminateLevel logLevel = iota - 2
	ErrorLevel
	ExceptionLevel
	BasicLevel
	VerboseLevel
	AllLevel
)

const defaultLevel = BasicLevel

var (
	prefixes = map[logLevel]string{ // Prepended to each output line
		TerminateLevel: "Terminate: ",
		ErrorLevel:     "Error: ",
		ExceptionLevel: "Exception: ",
		BasicLevel:     "",
		VerboseLevel:   "  ",
		AllLevel:       "   Dbg:",
	}

	outMu sync.Mutex // Serializes writes so each line reaches out in one piece
	out   io.Writer
	level atomic.Int32
)

func init() {
	out = os.Stderr
	level.Store(int32(defaultLevel))
}

func (t logLevel) String() string {
	switch t {
	case TerminateLevel:
		return "Terminate"
	case ErrorLevel:
		return "Error"
	case ExceptionLevel:
		return "Exception"
	case BasicLevel:
		return "Basic"
	case VerboseLevel:
		return "Verbose"
	case AllLevel:
		return "All"
	}

	return "Level(" + strconv.Itoa(int(t)) + ")"
}

// ParseLevel converts a level name such as "verbose" (case is ignored) or its integer
// value such as "2" into a level. Values outside TerminateLevel..AllLevel are rejected.
func ParseLevel(s string) (logLevel, error) {
	s = strings.TrimSpace(s)
	for l := TerminateLevel; l <= AllLevel; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return defaultLevel, fmt.Errorf("log.ParseLevel: Unknown level '%s'", s)
	}
	l := logLevel(n)
	if l < TerminateLevel || l > AllLevel {
		return defaultLevel, fmt.Errorf("log.ParseLevel: Level %d out of range %d-%d",
			n, TerminateLevel, AllLevel)
	}

	return l, nil
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stderr. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// Out returns the current io.Writer for specialist logger functions which are not
// controlled by log levels. The return value will never be nil.
func Out() io.Writer {
	outMu.Lock()
	defer outMu.Unlock()

	return out
}

// SetLevel replaces the current logging threshold and returns the previous one.
func SetLevel(l logLevel) logLevel {
	return logLevel(level.Swap(int32(l)))
}

// Level returns the current threshold.
func Level() logLevel {
	return logLevel(level.Load())
}

// If returns true if output at level l is currently written to the output stream.
// Applications use If in cases where evaluation of the log arguments is expensive and
// the caller wishes to skip that cost when the output would be discarded anyway.
func If(l logLevel) bool {
	return l <= Level()
}

// Debug provides a fmt.Print like interface to logging. Nothing is formatted unless If(l)
// is true. Debug uses fmt.Sprint to generate the output line thus it inherits the feature
// whereby spaces are added between operands when neither is a string.
func Debug(l logLevel, a ...interface{}) (n int, err error) {
	if !If(l) {
		return 0, nil
	}

	return Begin(l).Print(a...).End()
}

// Debugf provides a fmt.Printf equivalent interface to logging. Nothing is formatted
// unless If(l) is true. A newline is always added to the end of the output so the caller
// should not have that in their string.
func Debugf(l logLevel, format string, a ...interface{}) (n int, err error) {
	if !If(l) {
		return 0, nil
	}

	return Begin(l).Printf(format, a...).End()
}

// Writef is the unconditional fmt.Printf equivalent. Output is always written regardless
// of the current threshold and carries no level prefix.
func Writef(format string, a ...interface{}) (n int, err error) {
	return prefixAndPrintLines(fmt.Sprintf(format, a...), "")
}

// Write is the unconditional fmt.Print equivalent.
func Write(a ...interface{}) (n int, err error) {
	return prefixAndPrintLines(fmt.Sprint(a...), "")
}

// prefixAndPrintLines is the common handler which takes potentially multiple lines and
// sends them to the out stream prefixed with the supplied prefix. Trailing newlines are
// trimmed and exactly one is added back.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	var s string
	if strings.IndexByte(lines, '\n') == -1 { // Expect this to be the common case
		s = prefix + lines + "\n"
	} else {
		ar := strings.Split(lines, "\n")
		for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
			ar = ar[:len(ar)-1]
		}
		s = prefix + strings.Join(ar, "\n"+prefix) + "\n" // Line1 \nprefix Line2
	}

	outMu.Lock()
	defer outMu.Unlock()

	return io.WriteString(out, s)
}
