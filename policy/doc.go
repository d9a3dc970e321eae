// Package policy provides optional declarative rules that restrict which
// simulator sections may run, for example to lock a classroom session to the
// scheduling section only.
package policy
