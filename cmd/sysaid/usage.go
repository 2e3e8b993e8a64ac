package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c2h5oh/datasize"
	flag "github.com/spf13/pflag"

	"github.com/markdingo/sysaid/log"
	"github.com/markdingo/sysaid/osutil"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions populates t.cfg and t.args from the command line. Options must precede the
// command as interspersing is turned off so that command arguments which look like options,
// such as a setenv value of "-1", are passed through untouched.
func (t *sysAid) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.StringVar(&t.cfg.logLevel, "log-level", "",
		`Logging threshold by name (terminate, error, exception, basic,
verbose, all) or number (-2 to 3). Overrides $`+logLevelEnv+`
(default basic)`)
	fs.BoolVarP(&t.cfg.quietFlag, "quiet", "q", false, "Only report failures - same as --log-level error")
	fs.BoolVar(&t.cfg.verboseFlag, "verbose", false, "Same as --log-level verbose")
	fs.BoolVar(&t.cfg.noOverwriteFlag, "no-overwrite", false,
		"setenv leaves an existing variable unchanged")
	fs.StringVar(&t.cfg.minSizeString, "min-size", "",
		`stat marks files smaller than this size, e.g. 10KB or 2MB`)

	// Neither the standard "flag" package nor "spf13/pflag" complain about duplicate
	// options so we manage that ourselves.

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true // Documentation options that never run a command
	dupes["version"] = true

	fs.SetInterspersed(false)
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	if t.cfg.quietFlag && t.cfg.verboseFlag {
		fmt.Fprintln(log.Out(), "Error: --quiet and --verbose are mutually exclusive")
		return parseFailed
	}

	envValue, envSet := osutil.NewEnvVar(logLevelEnv).Lookup()
	err = t.cfg.resolveLogLevel(envValue, envSet)
	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	if len(t.cfg.minSizeString) > 0 {
		t.cfg.minSize, err = datasize.ParseString(t.cfg.minSizeString)
		if err != nil {
			fmt.Fprintln(log.Out(), "Error: --min-size:", err.Error())
			return parseFailed
		}
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(log.Out(), "Error: No command supplied. Consider '-h'")
		return parseFailed
	}

	t.args = fs.Args()
	if _, ok := commands[t.args[0]]; !ok {
		fmt.Fprintf(log.Out(), "Error: Unknown command '%s'. Consider '-h'\n", t.args[0])
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "SYNOPSIS\n  %s [options] command [args...]\n\nCOMMANDS\n", programName)
	for _, n := range names {
		fmt.Fprintf(&b, "  %-10s %s\n", n, commands[n].help)
	}
	fmt.Fprintf(&b, "\nOPTIONS\n%s", fs.FlagUsages())

	log.Write(b.String())
}
