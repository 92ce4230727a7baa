package image

import (
	"cmp"
	"image"
	"sort"

	"github.com/mmuldo/colormatch/cie"
)

// ColorCount is a colour and the number of sampled pixels that have it.
type ColorCount struct {
	Color cie.Color
	Count int
}

// ColorCountList sorts by descending count, then by channel value (R, G, B,
// A) so that equal counts come out in a stable order.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return compareColors(ccl[i].Color, ccl[j].Color) < 0
}

func compareColors(x, y cie.Color) int {
	return cmp.Or(
		cmp.Compare(x.R, y.R),
		cmp.Compare(x.G, y.G),
		cmp.Compare(x.B, y.B),
		cmp.Compare(x.A, y.A),
	)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors returns a map of an image's colors and the number of times each
// color occurs, sampling every step-th pixel in both directions. Fully
// transparent pixels are skipped.
func GetColors(img image.Image, step int) map[cie.Color]int {
	if step < 1 {
		step = 1
	}
	m := make(map[cie.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[cie.FromColor(c)]++
			}
		}
	}

	return m
}

// RankColors orders the colors of m by prevalence.
func RankColors(m map[cie.Color]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}
