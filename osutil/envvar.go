package osutil

import (
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
)

// EnvVar refers to a process environment variable by name. It holds no value; every
// method consults the environment at the time of the call.
type EnvVar struct {
	name string
}

func NewEnvVar(name string) EnvVar {
	return EnvVar{name: name}
}

func (t EnvVar) Name() string {
	return t.name
}

// Get returns the current value or an *EnvVarNotSetError if the variable is absent. A
// variable set to the empty string is present.
func (t EnvVar) Get() (string, error) {
	v, ok := os.LookupEnv(t.name)
	if !ok {
		return "", &EnvVarNotSetError{Name: t.name}
	}

	return v, nil
}

// Lookup is the non-failing form of Get.
func (t EnvVar) Lookup() (string, bool) {
	return os.LookupEnv(t.name)
}

// IsUnset returns true if the variable is absent from the environment.
func (t EnvVar) IsUnset() bool {
	_, ok := os.LookupEnv(t.name)

	return !ok
}

// Set assigns value to the variable. If overwrite is false and the variable is already
// present, it is left unchanged and nil is returned. os.Setenv always overwrites, so the
// presence check is made here, which means it is not atomic with respect to other
// goroutines changing the environment.
//
// An *EnvVarError is returned if the OS rejects the name or value, e.g. an empty name or
// one containing '='.
func (t EnvVar) Set(value string, overwrite bool) error {
	if !overwrite && !t.IsUnset() {
		return nil
	}
	err := os.Setenv(t.name, value)
	if err != nil {
		return &EnvVarError{Op: "set", Name: t.name, Err: err}
	}

	return nil
}

// Unset removes the variable. Removing an absent variable is not an error and any OS
// failure is ignored.
func (t EnvVar) Unset() {
	_ = os.Unsetenv(t.name)
}

// Describe renders the variable as $NAME = 'value'. An unset variable cannot be
// described and returns the *EnvVarNotSetError from Get.
func (t EnvVar) Describe() (string, error) {
	v, err := t.Get()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("$%s = '%s'", t.name, v), nil
}

// ByteSize parses the value as a data size such as "64MB" or "512 kb". An absent variable
// returns *EnvVarNotSetError and an unparseable value returns *EnvVarError.
func (t EnvVar) ByteSize() (datasize.ByteSize, error) {
	v, err := t.Get()
	if err != nil {
		return 0, err
	}
	bs, err := datasize.ParseString(v)
	if err != nil {
		return 0, &EnvVarError{Op: "parse", Name: t.name, Err: err}
	}

	return bs, nil
}
