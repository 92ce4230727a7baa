package cie

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a device colour with every channel in [0,1]. Alpha is carried
// along but takes no part in conversions or distances.
type Color struct {
	R, G, B, A float64
}

// RGBA returns the colour with the given channels.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// FromColor extracts the normalized, non-premultiplied channels of c.
// A fully transparent colour has no recoverable hue and maps to the zero Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a)
	return Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// ParseHex parses "#rgb" or "#rrggbb". The result is opaque.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return RGB(c.R, c.G, c.B), nil
}

// Parse reads a colour written either as hex ("#ff8000") or as three or four
// comma separated channel values ("1,0.5,0" or "1,0.5,0,0.8"). Channel values
// are not range checked here; that is up to the Converter.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}

	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, fmt.Errorf("parse %q: want #hex or r,g,b[,a]", s)
	}
	ch := [4]float64{3: 1}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse %q: %w", s, err)
		}
		ch[i] = v
	}
	return Color{ch[0], ch[1], ch[2], ch[3]}, nil
}

// Random returns an opaque colour with each channel drawn uniformly from [0,1).
func Random(r *rand.Rand) Color {
	return RGB(r.Float64(), r.Float64(), r.Float64())
}

// Hex formats the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// RGBA8 returns the channels scaled to 8 bits.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.4f, %.4f, %.4f, %.4f)", c.R, c.G, c.B, c.A)
}

// Validate reports the first channel outside [0,1] as a *ChannelError.
func (c Color) Validate() error {
	for _, ch := range c.channels() {
		if !(ch.v >= 0 && ch.v <= 1) {
			return &ChannelError{Channel: ch.name, Value: ch.v}
		}
	}
	return nil
}

// Clamp limits every channel to [0,1]. NaN becomes 0.
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

type namedChannel struct {
	name string
	v    float64
}

func (c Color) channels() [4]namedChannel {
	return [4]namedChannel{{"R", c.R}, {"G", c.G}, {"B", c.B}, {"A", c.A}}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
