package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/colormatch/cie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripes returns a 10x10 image: 6 red columns, 3 blue, 1 transparent.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		var c color.NRGBA
		switch {
		case x < 6:
			c = color.NRGBA{R: 255, A: 255}
		case x < 9:
			c = color.NRGBA{B: 255, A: 255}
		}
		for y := 0; y < 10; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestGetColors(t *testing.T) {
	m := GetColors(stripes(), 1)
	assert.Equal(t, map[cie.Color]int{
		cie.RGB(1, 0, 0): 60,
		cie.RGB(0, 0, 1): 30,
	}, m)

	sampled := GetColors(stripes(), 2)
	assert.Equal(t, 15, sampled[cie.RGB(1, 0, 0)])
	assert.Equal(t, 10, sampled[cie.RGB(0, 0, 1)])
}

func TestGetColorsOffsetBounds(t *testing.T) {
	img := stripes().SubImage(image.Rect(5, 0, 8, 2))
	m := GetColors(img, 0)
	assert.Equal(t, 2, m[cie.RGB(1, 0, 0)])
	assert.Equal(t, 4, m[cie.RGB(0, 0, 1)])
}

func TestRankColors(t *testing.T) {
	ranked := RankColors(map[cie.Color]int{
		cie.RGB(0, 1, 0): 5,
		cie.RGB(1, 0, 0): 9,
		cie.RGB(0, 0, 1): 5,
	})
	require.Len(t, ranked, 3)
	assert.Equal(t, cie.RGB(1, 0, 0), ranked[0].Color)
	// equal counts are ordered by value
	assert.Equal(t, cie.RGB(0, 0, 1), ranked[1].Color)
	assert.Equal(t, cie.RGB(0, 1, 0), ranked[2].Color)
}

func TestRankColorsNearIdenticalTies(t *testing.T) {
	img := image.NewRGBA64(image.Rect(0, 0, 2, 1))
	img.SetRGBA64(0, 0, color.RGBA64{R: 30001, A: 0xffff})
	img.SetRGBA64(1, 0, color.RGBA64{R: 30000, A: 0xffff})
	m := GetColors(img, 1)
	require.Len(t, m, 2)

	for range 100 {
		ranked := RankColors(m)
		require.Len(t, ranked, 2)
		assert.Equal(t, 30000.0/0xffff, ranked[0].Color.R)
		assert.Equal(t, 30001.0/0xffff, ranked[1].Color.R)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripes.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, stripes()))
	require.NoError(t, f.Close())

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	assert.Len(t, GetColors(img, 1), 2)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "decode")

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
