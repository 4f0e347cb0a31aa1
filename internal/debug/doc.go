// Package debug is an opt-in trace log for the screen stack runtime.
//
// Logging is off unless the TUISTACK_DEBUG environment variable names a file,
// in which case timestamped lines are appended to it. The terminal belongs to
// the app while it runs, so traces never go to stdout or stderr.
package debug
