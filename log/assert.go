package log

import (
	"os"
	"runtime"
	"sync"
)

// AbortExitCode is the exit status of the default abort handler. It matches what a shell
// reports for a process killed by SIGABRT.
const AbortExitCode = 134

var (
	abortMu      sync.Mutex
	abortHandler func()
)

func defaultAbort() {
	os.Exit(AbortExitCode)
}

// CheckAssertion writes the assertion failure report for expr to Out() regardless of the
// current threshold and returns true to say the caller should now Abort. It is separate
// from Abort so that the report is always made even when a host has substituted a
// non-fatal abort handler.
func CheckAssertion(expr, funcName, fileName string, line int) bool {
	Writef("Assertion [%s] failed at %s, %s:%d", expr, funcName, fileName, line)

	return true
}

// Abort runs the current abort handler. With the default handler it does not return.
func Abort() {
	abortMu.Lock()
	fn := abortHandler
	abortMu.Unlock()
	if fn == nil {
		fn = defaultAbort
	}
	fn()
}

// SetAbortHandler replaces the function run by Abort and returns the previous one. A nil
// fn restores the default handler which exits the process with AbortExitCode.
func SetAbortHandler(fn func()) func() {
	abortMu.Lock()
	defer abortMu.Unlock()

	prev := abortHandler
	if prev == nil {
		prev = defaultAbort
	}
	abortHandler = fn

	return prev
}

// Assert does nothing if cond is true. Otherwise it reports expr along with the calling
// function, file and line via CheckAssertion and then calls Abort. The caller supplies
// expr as the source text of the condition, e.g.:
//
//	log.Assert(len(names) > 0, "len(names) > 0")
//
// The return value is cond so that callers with a non-fatal abort handler can still
// bail out.
func Assert(cond bool, expr string) bool {
	if cond {
		return true
	}

	funcName := "<unknown>"
	pc, file, line, ok := runtime.Caller(1)
	if ok {
		if f := runtime.FuncForPC(pc); f != nil {
			funcName = f.Name()
		}
	} else {
		file = "<unknown>"
	}

	if CheckAssertion(expr, funcName, file, line) {
		Abort()
	}

	return false
}
