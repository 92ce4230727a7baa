package palette

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/mmuldo/colormatch/cie"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a match. Found is false when the catalog was
// empty; ID and Label are then zero and Distance is +Inf.
type Result[K cmp.Ordered] struct {
	ID       K
	Label    string
	Color    cie.Color
	Distance float64
	Found    bool
}

func noMatch[K cmp.Ordered]() Result[K] {
	return Result[K]{Distance: math.Inf(1)}
}

func (e entry[K]) result(d float64) Result[K] {
	return Result[K]{ID: e.ID, Label: e.Label, Color: e.Color, Distance: d, Found: true}
}

// Match returns the entry nearest to q by ΔE00. Entries are scanned in
// ascending identifier order and only a strictly smaller distance replaces
// the current best, so the smallest identifier wins ties. An empty catalog
// yields a Result with Found false and a nil error, whatever q holds.
func (c *Catalog[K]) Match(q cie.Color) (Result[K], error) {
	res := noMatch[K]()
	if len(c.entries) == 0 {
		return res, nil
	}
	lab, err := c.conv.ToLab(q)
	if err != nil {
		return res, err
	}
	for _, e := range c.entries {
		d, err := c.distance(lab, e)
		if err != nil {
			return noMatch[K](), err
		}
		if d < res.Distance {
			res = e.result(d)
		}
	}
	return res, nil
}

// Nearest returns up to n entries ordered by distance from q, closest first,
// with ties in identifier order. n <= 0 returns every entry.
func (c *Catalog[K]) Nearest(q cie.Color, n int) ([]Result[K], error) {
	if len(c.entries) == 0 {
		return nil, nil
	}
	lab, err := c.conv.ToLab(q)
	if err != nil {
		return nil, err
	}
	out := make([]Result[K], 0, len(c.entries))
	for _, e := range c.entries {
		d, err := c.distance(lab, e)
		if err != nil {
			return nil, err
		}
		out = append(out, e.result(d))
	}
	slices.SortStableFunc(out, func(a, b Result[K]) int { return cmp.Compare(a.Distance, b.Distance) })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}

// MatchAll matches every query, running at most workers matches at a time
// (GOMAXPROCS when workers <= 0). Results are in query order. The first
// failure cancels the remaining queries.
func (c *Catalog[K]) MatchAll(ctx context.Context, queries []cie.Color, workers int) ([]Result[K], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Result[K], len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := c.Match(q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Distance returns ΔE00 between two colours using the catalog's converter
// and weights.
func (c *Catalog[K]) Distance(x, y cie.Color) (float64, error) {
	lx, err := c.conv.ToLab(x)
	if err != nil {
		return 0, err
	}
	ly, err := c.conv.ToLab(y)
	if err != nil {
		return 0, err
	}
	d := c.weights.Difference(lx, ly)
	return d, cie.CheckFinite("ciede2000", d)
}

func (c *Catalog[K]) distance(q cie.Lab, e entry[K]) (float64, error) {
	d := c.weights.Difference(q, e.lab)
	if err := cie.CheckFinite("ciede2000", d); err != nil {
		return 0, fmt.Errorf("entry %v: %w", e.ID, err)
	}
	return d, nil
}
