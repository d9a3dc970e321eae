// Package model contains the in-memory representation of simulation inputs
// and outputs: process records, execution timelines, memory arrays, deadlock
// matrices and the result envelope returned by every run.
//
// Records are treated as immutable values. Engines receive a snapshot and
// return decorated copies built with Clone and the With… helpers.
package model
