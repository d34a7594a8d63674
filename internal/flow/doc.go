// Package flow holds svcctl's interactive workflows: service-status
// inspection, context switching, and the entry menu loop that dispatches
// them. Every flow reports a single Outcome (completed, cancelled, or
// failed) so the menu loop reacts uniformly: cancellation is silent, a
// failure is printed and the session keeps running.
package flow
