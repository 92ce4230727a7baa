package theme

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/colormatch/cie"
	"github.com/mmuldo/colormatch/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func system(t *testing.T) *palette.Catalog[int] {
	t.Helper()
	c, err := palette.System()
	require.NoError(t, err)
	return c
}

func vol(t *testing.T, cat *palette.Catalog[int], c cie.Color, count int) ColorVol {
	t.Helper()
	lab, err := cie.ToLab(c)
	require.NoError(t, err)
	m, err := cat.Match(c)
	require.NoError(t, err)
	return ColorVol{Color: c, Lab: lab, Count: count, Match: m}
}

func fixture(t *testing.T) []ColorVol {
	cat := system(t)
	return []ColorVol{
		vol(t, cat, cie.RGB(1, 1, 1), 10),
		vol(t, cat, cie.RGB(0, 0, 0), 40),
		vol(t, cat, cie.RGB(0, 0, 1), 30),
		vol(t, cat, cie.RGB(1, 1, 0), 20),
	}
}

func TestDelegate(t *testing.T) {
	p := Delegate(fixture(t))
	require.Len(t, p, 4)

	// darks: black, blue by count; lights: yellow, white by count
	assert.Equal(t, "label", p[0].Match.Label)
	assert.Equal(t, "blue", p[1].Match.Label)
	assert.Equal(t, "yellow", p[2].Match.Label)
	assert.Equal(t, "white", p[3].Match.Label)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Keys())
}

func TestCreate(t *testing.T) {
	th := Create(Delegate(fixture(t)), map[string]interface{}{"transparency": 0.8})

	assert.Equal(t, "#000000", th["color0"])
	assert.Equal(t, "blue", th["color1_name"])
	assert.Equal(t, 0.0, th["color3_delta"])
	assert.Equal(t, "#000000", th["background"])
	assert.Equal(t, "#ffff00", th["foreground"])
	assert.Equal(t, 0.8, th["transparency"])
	assert.Len(t, th["colors"], 4)
}

func TestRender(t *testing.T) {
	th := Create(Delegate(fixture(t)), nil)

	out, err := Render(th, DefaultTemplate)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "color0 = #000000  label (ΔE00 0.00)", lines[0])
	assert.Equal(t, "color2 = #ffff00  yellow (ΔE00 0.00)", lines[2])
	assert.Equal(t, "background = #000000", lines[4])
	assert.Equal(t, "foreground = #ffff00", lines[5])

	_, err = Render(th, "{% for %}")
	assert.ErrorContains(t, err, "parse template")
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termite")
	require.NoError(t, os.WriteFile(path, []byte("[colors]\nbackground = {{ background }}\ncolor1 = {{ color1 }}\n"), 0o644))

	out, err := RenderFile(Create(Delegate(fixture(t)), nil), path)
	require.NoError(t, err)
	assert.Equal(t, "[colors]\nbackground = #000000\ncolor1 = #0000ff\n", out)

	_, err = RenderFile(Theme{}, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestGetColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for x := 0; x < 20; x++ {
		c := color.NRGBA{R: 255, A: 255}
		if x >= 14 {
			c = color.NRGBA{B: 255, A: 255}
		}
		for y := 0; y < 20; y++ {
			img.SetNRGBA(x, y, c)
		}
	}

	cvs, err := GetColors(img, 2, system(t))
	require.NoError(t, err)
	require.NotEmpty(t, cvs)
	assert.LessOrEqual(t, len(cvs), 2)
	assert.Equal(t, "red", cvs[0].Match.Label)
	assert.True(t, cvs[0].Match.Found)

	_, err = GetColors(img, 0, system(t))
	assert.Error(t, err)
}
