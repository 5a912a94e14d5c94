// Package executor runs compiled actions in order.
//
// Each action's rendered log goes to the record writer and, unless quiet,
// to the output renderer. Actions that fail as a whole are reported to the
// error stream and left out of the record; individual copy failures are
// part of the action's log and are also echoed to the error stream.
package executor
