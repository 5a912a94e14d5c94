// Package manifest turns a .charon manifest into an ordered list of actions.
//
// A manifest is line oriented. Blank lines and lines starting with # are
// ignored, a line starting with @ asks for the unit's directory under each
// named location, and every other line maps a source pattern (relative to
// the manifest) onto a destination:
//
//	# comment
//	@ DATA CONFIG
//	bin/*        BIN           755e
//	conf/app.toml CONFIG/app   o
//
// Compilation is all or nothing: the first bad line aborts with a LineError
// carrying its 1-based line number.
package manifest
