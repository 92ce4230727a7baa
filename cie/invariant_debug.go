//go:build colordebug

package cie

// Debug builds stop at the first invariant violation.
func violated(err error) error {
	panic(err)
}
