package cie

import (
	"fmt"
	"math"
)

// CheckFinite returns nil when every value is finite. Otherwise it reports an
// internal invariant violation for the named stage through violated.
func CheckFinite(stage string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return violated(fmt.Errorf("%w in %s: %v", ErrNonFinite, stage, vs))
		}
	}
	return nil
}
