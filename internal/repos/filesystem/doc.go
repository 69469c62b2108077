// Package filesystem abstracts the operating system calls made while probing
// for repository markers so that callers can substitute in-memory fakes.
package filesystem
