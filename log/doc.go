/*
Package log provides level-filtered debug output and assertion reporting across the whole
application. Logging comes in six levels: Terminate, Error, Exception, Basic, Verbose and
All, each more detailed than the previous. It's up to the application to decide which
output belongs with which level. Levels are inclusive, so, e.g., if VerboseLevel is set
that implies BasicLevel logging and everything below it.

The central construct is the Line. A Line is created with Begin(), text is appended to it
with Print and Printf, and when End is called the whole line is written in one go if its
level is at or below the current threshold, otherwise it is silently dropped. Emission
happens exactly once, at End, never incrementally. The usual pattern is:

	l := log.Begin(log.VerboseLevel)
	defer l.End()
	l.Printf("loaded %d entries", n)

The threshold is consulted at End, not at Begin, so a Line created while its level is
disabled still emits if the threshold is raised before End runs.

Formatting arguments costs something even if the Line is discarded. Callers which care use
the If() guard, or the Debug and Debugf helpers which apply the guard for them:

	if log.If(log.AllLevel) {
		log.Debugf(log.AllLevel, "state: %s", expensiveDump())
	}

Write and Writef bypass the threshold entirely and are meant for always-emit diagnostics
such as start-up and shut-down messages.

Assert reports a failed condition to the output and then calls Abort. The default abort
handler terminates the process. Hosts which prefer a non-fatal strategy substitute their
own handler with SetAbortHandler; the report is always written first.

Specialist logging functions external to this package should still use log.Out() to access
the current io.Writer for the purposes of capturing output for tests.
*/
package log
