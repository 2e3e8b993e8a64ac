/*
Package osutil wraps the few operating system calls the rest of the program needs so that
failures come back as typed errors rather than raw syscall errors.

EnvVar is a handle on a process environment variable, identified by name and resolved
afresh on every call. Filename is a handle on a path which is stat()ed afresh on every
call. Neither caches anything.

Note the deliberate asymmetry in Filename: Exists() folds every stat failure, including
permission problems, into false and never returns an error, whereas Size() returns an
*IOError for every stat failure, including non-existence.
*/
package osutil
