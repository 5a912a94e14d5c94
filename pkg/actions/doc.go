// Package actions defines the two kinds of work a compiled manifest can ask
// for, installing files and creating unit directories, and knows how to
// execute each of them against an afero filesystem.
//
// Actions are values: the compiler builds them, the executor runs them once
// in manifest order. Every destination an action touches is handed to a
// Claimer so the record package can tell which previously installed paths
// are still wanted.
package actions
