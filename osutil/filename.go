package osutil

import (
	"os"

	"github.com/c2h5oh/datasize"
)

// Filename is a path which is stat()ed each time it is queried. Results are never cached.
type Filename string

// Exists returns true if stat() of the path succeeds. Any failure, including permission
// denied, is reported as false.
func (t Filename) Exists() bool {
	_, err := os.Stat(string(t))

	return err == nil
}

// Size returns the size of the file in bytes. Unlike Exists, any stat() failure,
// including non-existence, is returned as an *IOError.
func (t Filename) Size() (int64, error) {
	fi, err := os.Stat(string(t))
	if err != nil {
		return 0, &IOError{Path: string(t), Err: err}
	}

	return fi.Size(), nil
}

// HumanSize returns Size formatted for people, e.g. "1.5 MB". Sizes below 1KB print as bytes.
func (t Filename) HumanSize() (string, error) {
	n, err := t.Size()
	if err != nil {
		return "", err
	}

	return datasize.ByteSize(n).HumanReadable(), nil
}
