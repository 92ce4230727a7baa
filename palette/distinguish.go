package palette

import "cmp"

// Pair is two catalog entries and the ΔE00 between them.
type Pair[K cmp.Ordered] struct {
	A, B     Entry[K]
	Distance float64
}

// Confusable returns every pair of entries closer than threshold, in
// identifier order of the first and then the second entry. Such entries make
// Match results depend on tie-breaking rather than on the colours.
func Confusable[K cmp.Ordered](c *Catalog[K], threshold float64) []Pair[K] {
	var pairs []Pair[K]
	for i := 0; i < len(c.entries); i++ {
		for j := i + 1; j < len(c.entries); j++ {
			a, b := c.entries[i], c.entries[j]
			if d := c.weights.Difference(a.lab, b.lab); d < threshold {
				pairs = append(pairs, Pair[K]{a.Entry, b.Entry, d})
			}
		}
	}
	return pairs
}
