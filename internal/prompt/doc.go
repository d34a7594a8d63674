// Package prompt provides the two terminal prompts svcctl is built around:
// a single-select list and a multi-select checkbox list. Both are small
// bubbletea programs that run to completion and hand back the selection.
// Cancelling a prompt (esc / ctrl+c / q) is a normal outcome, reported as
// ErrCancelled rather than a failure; callers check it with errors.Is and
// return to whatever they were doing.
package prompt
