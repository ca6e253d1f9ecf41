// Package logging provides a unified logging interface for statline.
// It abstracts the underlying logging implementation, allowing consistent
// diagnostics across components. Diagnostics always go to standard error:
// standard output is reserved for the status line.
package logging
