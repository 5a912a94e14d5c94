// Package core wires the manifest compiler, the executor and the record
// store into one install run.
//
// A run locates and compiles the manifest, loads the unit's previous
// record into an orphan set, opens the new record, executes every action
// and finally removes whatever the previous record held that nothing
// claimed. Compilation happens before the record is opened, so a broken
// manifest never clobbers the baseline.
package core
