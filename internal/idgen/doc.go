// Package idgen provides run identifiers (UUID strings that can be stubbed in
// tests) and monotonic process identifiers. Callers treat both as opaque.
package idgen
