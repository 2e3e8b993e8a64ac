package log

import (
	"strings"
	"testing"

	"github.com/markdingo/sysaid/mock"
)

func TestLevels(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	if Out() != &w {
		t.Fatal("SetOut or Out failed")
	}

	for l := TerminateLevel; l <= AllLevel; l++ {
		SetLevel(l)
		if Level() != l {
			t.Error("SetLevel did not stick", l, Level())
		}
	}

	SetLevel(VerboseLevel)
	prev := SetLevel(ErrorLevel)
	if prev != VerboseLevel {
		t.Error("SetLevel should return previous. Got", prev)
	}
	if SetLevel(prev) != ErrorLevel {
		t.Error("SetLevel should return ErrorLevel on restore")
	}

	SetLevel(BasicLevel)
	if !If(TerminateLevel) || !If(ErrorLevel) || !If(ExceptionLevel) || !If(BasicLevel) {
		t.Error("Basic should enable all lower levels")
	}
	if If(VerboseLevel) || If(AllLevel) {
		t.Error("Basic should not enable Verbose or All")
	}
}

func TestLevelStrings(t *testing.T) {
	testCases := []struct {
		level logLevel
		name  string
	}{
		{TerminateLevel, "Terminate"},
		{ErrorLevel, "Error"},
		{ExceptionLevel, "Exception"},
		{BasicLevel, "Basic"},
		{VerboseLevel, "Verbose"},
		{AllLevel, "All"},
		{logLevel(42), "Level(42)"},
	}

	for ix, tc := range testCases {
		if tc.level.String() != tc.name {
			t.Error(ix, "Wrong string. Want", tc.name, "got", tc.level.String())
		}
	}

	if TerminateLevel != -2 || ExceptionLevel != 0 || AllLevel != 3 {
		t.Error("Level values have moved", TerminateLevel, ExceptionLevel, AllLevel)
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in     string
		expect logLevel
		ok     bool
	}{
		{"terminate", TerminateLevel, true},
		{"ERROR", ErrorLevel, true},
		{"Exception", ExceptionLevel, true},
		{" basic ", BasicLevel, true},
		{"verbose", VerboseLevel, true},
		{"all", AllLevel, true},
		{"-2", TerminateLevel, true},
		{"2", VerboseLevel, true},
		{"3", AllLevel, true},
		{"4", defaultLevel, false},
		{"-3", defaultLevel, false},
		{"noisy", defaultLevel, false},
		{"", defaultLevel, false},
	}

	for ix, tc := range testCases {
		got, err := ParseLevel(tc.in)
		if tc.ok && err != nil {
			t.Error(ix, "Unexpected error", err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Error(ix, "Expected error for", tc.in)
			}
			continue
		}
		if got != tc.expect {
			t.Error(ix, "Want", tc.expect, "got", got)
		}
	}
}

func TestLineGating(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(BasicLevel)

	Begin(VerboseLevel).Print("Should not log").End()
	Begin(AllLevel).Printf("Should %s log", "not").End()
	if w.Len() > 0 {
		t.Error("Disabled level still logged", w.String())
	}

	Begin(ErrorLevel).Print("disk ", 3, " failed").End()
	exp := prefixes[ErrorLevel] + "disk 3 failed\n"
	if w.String() != exp {
		t.Error("Error line not emitted. Got:", w.String(), "Exp:", exp)
	}
	if w.Lines() != 1 {
		t.Error("Expected exactly one line, got", w.Lines())
	}
}

func TestLineEmitsOnlyAtEnd(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(AllLevel)

	l := Begin(BasicLevel)
	l.Print("a")
	l.Printf("%d", 1)
	if w.Len() > 0 {
		t.Error("Line emitted before End", w.String())
	}
	if l.String() != "a1" {
		t.Error("Buffered text wrong", l.String())
	}
	if l.Level() != BasicLevel {
		t.Error("Line level wrong", l.Level())
	}

	n, err := l.End()
	if err != nil || n != len("a1\n") {
		t.Error("End returned", n, err)
	}
	n, err = l.End() // Second End is a noop
	if err != nil || n != 0 {
		t.Error("Second End should be a noop", n, err)
	}
	if w.String() != "a1\n" {
		t.Error("Expected a single emission. Got:", w.String())
	}
}

// The threshold is checked when the Line ends, not when it begins.
func TestLineThresholdAtEnd(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)

	SetLevel(BasicLevel)
	l := Begin(VerboseLevel).Print("late")
	SetLevel(VerboseLevel)
	l.End()
	if w.String() != prefixes[VerboseLevel]+"late\n" {
		t.Error("Line should emit at raised threshold. Got:", w.String())
	}

	w.Reset()
	l = Begin(VerboseLevel).Print("dropped")
	SetLevel(BasicLevel)
	l.End()
	if w.Len() > 0 {
		t.Error("Line should drop at lowered threshold. Got:", w.String())
	}
}

func TestLineDeferred(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(BasicLevel)

	func() {
		defer func() { recover() }()
		l := Begin(ErrorLevel)
		defer l.End()
		l.Print("before panic")
		panic("boom")
	}()

	if w.String() != prefixes[ErrorLevel]+"before panic\n" {
		t.Error("Deferred End did not emit on panic. Got:", w.String())
	}
}

type expensive struct {
	called *int
}

func (t expensive) String() string {
	*t.called++
	return "costly"
}

func TestDebugSkipsFormatting(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(BasicLevel)

	calls := 0
	e := expensive{&calls}
	Debug(VerboseLevel, e)
	Debugf(AllLevel, "%s", e)
	if calls != 0 {
		t.Error("Disabled Debug formatted its arguments", calls)
	}
	if w.Len() > 0 {
		t.Error("Disabled Debug logged", w.String())
	}

	Debug(BasicLevel, e)
	Debugf(ExceptionLevel, "%s!", e)
	if calls != 2 {
		t.Error("Enabled Debug should format", calls)
	}
	exp := "costly\n" + prefixes[ExceptionLevel] + "costly!\n"
	if w.String() != exp {
		t.Error("Debug output wrong. Got:", w.String(), "Exp:", exp)
	}
}

func TestWriteIsUnconditional(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(TerminateLevel)

	Writef("%d a", 5)
	Write("b")
	exp := "5 a\nb\n"
	if w.String() != exp {
		t.Error("Unconditional writes not working. Got:", w.String(), "Exp:", exp)
	}
}

func TestFormat(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(BasicLevel)
	// Need to trick the complier so it doesn't warn about %d
	f := "%"
	f += "d a "
	Debug(BasicLevel, f, 5)       // Should not format
	Debugf(BasicLevel, "%d b", 5) // Should format
	exp := "%d a 5\n5 b\n"
	if exp != w.String() {
		t.Error("F and non-F not working", len(w.String()), len(exp), w.String(), exp)
	}
}

func TestMultiLine(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(BasicLevel)

	testCases := []struct {
		level logLevel
		in    string
		exp   string
	}{
		{BasicLevel, "a", "a\n"},
		{BasicLevel, "a\n", "a\n"},
		{BasicLevel, "a\nb", "a\nb\n"},
		{BasicLevel, "a\nb\n\n\n", "a\nb\n"},
		{ErrorLevel, "a\nb", "Error: a\nError: b\n"},
		{ErrorLevel, "a\nb\n\n\n", "Error: a\nError: b\n"},
	}

	for ix, tc := range testCases {
		w.Reset()
		Begin(tc.level).Print(tc.in).End()
		if w.String() != tc.exp {
			t.Errorf("%d Want %q got %q", ix, tc.exp, w.String())
		}
	}

	SetLevel(AllLevel)
	w.Reset()
	Debug(AllLevel, "a\nb")
	exp := prefixes[AllLevel] + "a\n" + prefixes[AllLevel] + "b\n"
	if !strings.HasPrefix(w.String(), prefixes[AllLevel]) || w.String() != exp {
		t.Error("All prefix not applied to every line", w.String())
	}
}

func TestSetOutNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetOut(nil) should panic")
		}
	}()
	SetOut(nil)
}

func TestSingleWrite(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(AllLevel)

	Begin(VerboseLevel).Print("one\ntwo\nthree").End()
	if w.Writes() != 1 {
		t.Error("Multi-line entry should arrive in one write, got", w.Writes())
	}
	if w.Lines() != 3 {
		t.Error("Expected three lines, got", w.Lines(), w.String())
	}
}

func TestWriteError(t *testing.T) {
	defer SetOut(Out())
	SetOut(mock.FailWriter{})
	SetLevel(BasicLevel)

	_, err := Begin(ErrorLevel).Print("lost").End()
	if err != mock.ErrWriteFailed {
		t.Error("End should return the sink error, got", err)
	}
	_, err = Writef("lost")
	if err != mock.ErrWriteFailed {
		t.Error("Writef should return the sink error, got", err)
	}
}
