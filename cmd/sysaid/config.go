package main

import (
	"fmt"
	"runtime/debug"

	"github.com/c2h5oh/datasize"

	"github.com/markdingo/sysaid/log"
	"github.com/markdingo/sysaid/pregen"
)

const (
	programName = "sysaid"

	defaultProjectURL = "https://github.com/markdingo/sysaid"

	// Consulted when no logging option is given on the command line
	logLevelEnv = "SYSAID_LOG_LEVEL"
)

// config defines the settings derived from the command line and environment. Once
// parseOptions returns it is not changed.
type config struct {
	projectURL string

	logLevel    string // "--log-level" as given, converted by log.ParseLevel
	quietFlag   bool   // Equivalent to --log-level error
	verboseFlag bool   // Equivalent to --log-level verbose

	noOverwriteFlag bool // setenv leaves an existing variable alone

	minSizeString string            // "--min-size" as given
	minSize       datasize.ByteSize // Converted from minSizeString, zero means unset
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	log.Writef("Program:     %s %s (%s)", programName, pregen.Version, pregen.ReleaseDate)
	log.Writef("Project:     %s", t.projectURL)
}

// resolveLogLevel picks the threshold from, in order of precedence, --log-level, then
// --verbose or --quiet, then the environment. If none are present the log package default
// stands.
func (t *config) resolveLogLevel(envLevel string, envSet bool) error {
	var (
		from string
		s    string
	)
	switch {
	case len(t.logLevel) > 0:
		from, s = "--log-level", t.logLevel
	case t.verboseFlag:
		log.SetLevel(log.VerboseLevel)
		return nil
	case t.quietFlag:
		log.SetLevel(log.ErrorLevel)
		return nil
	case envSet && len(envLevel) > 0:
		from, s = "$"+logLevelEnv, envLevel
	default:
		return nil
	}

	l, err := log.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("%s: %w", from, err)
	}
	log.SetLevel(l)

	return nil
}
