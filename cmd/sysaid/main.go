package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/markdingo/sysaid/log"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

// The sysAid container exists so that most of the "main" functionality can be delegated
// to support functions and tested without exiting.
type sysAid struct {
	cfg  *config
	args []string // Command and its arguments, set by parseOptions
}

func newSysAid(cfg *config) *sysAid {
	t := &sysAid{cfg: cfg}
	if t.cfg == nil {
		t.cfg = newConfig()
	}

	return t
}

// run returns the process exit status.
func (t *sysAid) run(args []string) int {
	switch t.parseOptions(args) {
	case parseStop:
		return 0
	case parseFailed:
		return 1
	case parseContinue:
	}

	log.Debugf(log.VerboseLevel, "%s starting with Log Level: %s", programName, log.Level())

	return t.dispatch()
}

//////////////////////////////////////////////////////////////////////

func main() {
	log.SetOut(os.Stdout) // Command output and diagnostics share the one stream
	if len(os.Args) == 0 {
		fatal(nil, "No program name in argument list")
	}

	os.Exit(newSysAid(nil).run(os.Args))
}
