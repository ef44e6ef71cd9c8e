//go:build !neobuffer_unchecked

// Package check implements the precondition policy for the buffer core:
// contract violations panic in default builds and are compiled out when
// the neobuffer_unchecked build tag is set.
package check

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("neobuffer: " + msg)
	}
}
