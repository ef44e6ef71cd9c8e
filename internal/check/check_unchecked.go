//go:build neobuffer_unchecked

package check

// Assert is a no-op in unchecked builds; violated preconditions are
// undefined behaviour.
func Assert(bool, string) {}
