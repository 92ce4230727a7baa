package palette

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/mmuldo/colormatch/cie"
	"golang.org/x/text/cases"
)

// ErrDuplicateID is wrapped by errors for catalogs declaring an identifier twice.
var ErrDuplicateID = errors.New("duplicate catalog id")

// Entry is a labelled reference colour.
type Entry[K cmp.Ordered] struct {
	ID    K
	Color cie.Color
	Label string
}

type entry[K cmp.Ordered] struct {
	Entry[K]
	lab cie.Lab
}

// Catalog is an immutable set of reference colours keyed by identifier.
// Scans always run in ascending identifier order, so the smallest identifier
// wins ties. A Catalog is safe for concurrent use.
type Catalog[K cmp.Ordered] struct {
	entries []entry[K]
	index   map[K]int
	conv    cie.Converter
	weights cie.Weights
}

type options struct {
	conv    cie.Converter
	weights cie.Weights
}

// Option configures a Catalog.
type Option func(*options)

// WithConverter sets the converter used for entries and queries. The default
// is cie.Standard in strict mode.
func WithConverter(c cie.Converter) Option {
	return func(o *options) { o.conv = c }
}

// WithWeights sets the CIEDE2000 weights. The default is cie.DefaultWeights.
func WithWeights(w cie.Weights) Option {
	return func(o *options) { o.weights = w }
}

// New builds a catalog, converting every entry to L*a*b* up front.
func New[K cmp.Ordered](entries []Entry[K], opts ...Option) (*Catalog[K], error) {
	o := options{conv: cie.Standard{}}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.weights.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog[K]{
		entries: make([]entry[K], 0, len(entries)),
		index:   make(map[K]int, len(entries)),
		conv:    o.conv,
		weights: o.weights,
	}
	for _, e := range entries {
		if _, ok := c.index[e.ID]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateID, e.ID)
		}
		lab, err := c.conv.ToLab(e.Color)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %v (%s): %w", e.ID, e.Label, err)
		}
		c.index[e.ID] = -1
		c.entries = append(c.entries, entry[K]{e, lab})
	}

	slices.SortFunc(c.entries, func(a, b entry[K]) int { return cmp.Compare(a.ID, b.ID) })
	for i, e := range c.entries {
		c.index[e.ID] = i
	}
	return c, nil
}

// FromMap builds a catalog from a mapping of identifier to entry. The map key
// is authoritative; the entries' ID fields are overwritten.
func FromMap[K cmp.Ordered](m map[K]Entry[K], opts ...Option) (*Catalog[K], error) {
	entries := make([]Entry[K], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		e := m[k]
		e.ID = k
		entries = append(entries, e)
	}
	return New(entries, opts...)
}

// Len returns the number of entries.
func (c *Catalog[K]) Len() int { return len(c.entries) }

// Keys returns the identifiers in ascending order.
func (c *Catalog[K]) Keys() []K {
	keys := make([]K, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.ID
	}
	return keys
}

// Entries returns the entries in ascending identifier order.
func (c *Catalog[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Entry
	}
	return out
}

// Lookup returns the entry with the given identifier.
func (c *Catalog[K]) Lookup(id K) (Entry[K], bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry[K]{}, false
	}
	return c.entries[i].Entry, true
}

// FindLabel returns the first entry, in identifier order, whose label matches
// label under Unicode case folding.
func (c *Catalog[K]) FindLabel(label string) (Entry[K], bool) {
	fold := cases.Fold()
	want := fold.String(label)
	for _, e := range c.entries {
		if fold.String(e.Label) == want {
			return e.Entry, true
		}
	}
	return Entry[K]{}, false
}

// Lab returns the precomputed L*a*b* value of an entry.
func (c *Catalog[K]) Lab(id K) (cie.Lab, bool) {
	i, ok := c.index[id]
	if !ok {
		return cie.Lab{}, false
	}
	return c.entries[i].lab, true
}

// Converter returns the converter the catalog was built with.
func (c *Catalog[K]) Converter() cie.Converter { return c.conv }
