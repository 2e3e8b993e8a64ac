package main

import (
	"fmt"

	"github.com/c2h5oh/datasize"

	"github.com/markdingo/sysaid/log"
	"github.com/markdingo/sysaid/osutil"
)

// command describes one sub-command. run is given the arguments following the command
// name and returns the number of arguments which could not be processed.
type command struct {
	minArgs, maxArgs int // maxArgs < 0 means unlimited
	help             string
	run              func(t *sysAid, args []string) int
}

var commands = map[string]command{
	"env": {1, -1, "NAME... - print $NAME = 'value' for each variable",
		(*sysAid).envCommand},
	"setenv": {2, 2, "NAME VALUE - set NAME in this process and print the result",
		(*sysAid).setenvCommand},
	"unsetenv": {1, -1, "NAME... - remove each variable from this process",
		(*sysAid).unsetenvCommand},
	"stat": {1, -1, "PATH... - print existence and size of each path",
		(*sysAid).statCommand},
}

// Reports of successful lookups are logged at BasicLevel so that --quiet leaves only the
// failures, which are always written.

func (t *sysAid) envCommand(args []string) (failed int) {
	for _, name := range args {
		s, err := osutil.NewEnvVar(name).Describe()
		if err != nil {
			warning(err)
			failed++
			continue
		}
		log.Debug(log.BasicLevel, s)
	}

	return
}

func (t *sysAid) setenvCommand(args []string) int {
	ev := osutil.NewEnvVar(args[0])
	log.Debugf(log.VerboseLevel, "setenv %s overwrite=%t was unset=%t",
		ev.Name(), !t.cfg.noOverwriteFlag, ev.IsUnset())
	err := ev.Set(args[1], !t.cfg.noOverwriteFlag)
	if err != nil {
		warning(err)
		return 1
	}

	s, err := ev.Describe()
	if !log.Assert(err == nil, "err == nil") { // Set just succeeded so it must be present
		return 1
	}
	log.Debug(log.BasicLevel, s)

	return 0
}

func (t *sysAid) unsetenvCommand(args []string) int {
	for _, name := range args {
		osutil.NewEnvVar(name).Unset()
		log.Debugf(log.VerboseLevel, "unset $%s", name)
	}

	return 0
}

func (t *sysAid) statCommand(args []string) (failed int) {
	for _, path := range args {
		fn := osutil.Filename(path)
		exists := fn.Exists()
		size, err := fn.Size()
		if err != nil {
			log.Writef("%s: exists=%t", path, exists)
			warning(err)
			failed++
			continue
		}

		l := log.Begin(log.BasicLevel)
		l.Printf("%s: exists=%t size=%d (%s)",
			path, exists, size, datasize.ByteSize(size).HumanReadable())
		if t.cfg.minSize > 0 && datasize.ByteSize(size) < t.cfg.minSize {
			l.Print(" (small)")
		}
		if log.If(log.AllLevel) {
			l.Printf(" min-size=%s", t.cfg.minSize.HumanReadable())
		}
		l.End()
	}

	return
}

// dispatch runs the command named by t.args[0]. parseOptions has already confirmed the
// command exists.
func (t *sysAid) dispatch() int {
	log.Assert(len(t.args) > 0, "len(t.args) > 0")
	cmd, ok := commands[t.args[0]]
	if !log.Assert(ok, "ok") {
		return 1
	}

	args := t.args[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		warning(nil, fmt.Sprintf("'%s' expects %s", t.args[0], cmd.help))
		return 1
	}

	log.Debugf(log.VerboseLevel, "Running %s with %d argument(s)", t.args[0], len(args))
	if cmd.run(t, args) > 0 {
		return 1
	}

	return 0
}
