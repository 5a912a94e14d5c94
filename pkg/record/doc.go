// Package record persists the destinations a run touched and uses them on
// the next run to find orphans.
//
// A record file is the plain text an install run printed: each destination
// on its own line, followed by an indented "# status" comment. Parse also
// accepts the shorter uninstall style, where a line holds the path as its
// second of two or three tokens.
package record
