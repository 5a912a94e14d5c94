// Package filesystem provides the filesystem seam for charon.
//
// Every component that touches the disk (the manifest compiler, the action
// executor and the record store) takes an afero.Fs. Production code uses
// NewOS, tests use NewMemory or a real temp directory through NewOS.
package filesystem
