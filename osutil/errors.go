package osutil

import "fmt"

// EnvVarNotSetError is returned when an environment variable that must be present is
// absent.
type EnvVarNotSetError struct {
	Name string
}

func (t *EnvVarNotSetError) Error() string {
	return fmt.Sprintf("Environment variable '%s' is not set", t.Name)
}

// EnvVarError is returned when the OS rejects setting an environment variable or when
// its value cannot be converted. Op is "set" or "parse".
type EnvVarError struct {
	Op   string
	Name string
	Err  error
}

func (t *EnvVarError) Error() string {
	return fmt.Sprintf("Failed to %s [%s] environment variable: %s", t.Op, t.Name, t.Err.Error())
}

func (t *EnvVarError) Unwrap() error {
	return t.Err
}

// IOError is returned when stat() of a file fails for any reason.
type IOError struct {
	Path string
	Err  error
}

func (t *IOError) Error() string {
	return fmt.Sprintf("Failed to stat() file [%s]: %s", t.Path, t.Err.Error())
}

func (t *IOError) Unwrap() error {
	return t.Err
}
