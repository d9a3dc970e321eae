// Package report exports simulator snapshots as YAML documents. Snapshots are
// persisted through afs so the target can be a local directory or any
// storage URL afs supports. Two snapshots can be compared with Diff.
package report
