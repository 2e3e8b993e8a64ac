package main

import (
	"os"
	"testing"

	"github.com/markdingo/sysaid/log"
	"github.com/markdingo/sysaid/mock"
)

// setup captures log output and restores the log threshold and the logging environment
// variable when the test completes.
func setup(t *testing.T) *mock.IOWriter {
	t.Helper()
	out := &mock.IOWriter{}
	log.SetOut(out)
	prev := log.Level()
	t.Cleanup(func() { log.SetLevel(prev) })

	t.Setenv(logLevelEnv, "") // Registers restoration
	os.Unsetenv(logLevelEnv)

	return out
}
