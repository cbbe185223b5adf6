// Package repository defines the read interface over the harness database.
//
// The core only ever reads two record sets: harness drawings and the wire
// segments that belong to each drawing. The sqlite subpackage implements
// the interface over a single-file SQLite database.
//
// # Snapshot Semantics
//
// Reads are independent. Two consecutive reads are not guaranteed to see
// the same snapshot; the data is treated as static for the duration of a
// generation run.
package repository
