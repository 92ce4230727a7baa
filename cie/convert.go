package cie

import "math"

// XYZ is a CIE 1931 tristimulus value on the [0,100] scale.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* colour. L lies in [0,100] for sRGB input; a and b are
// unbounded.
type Lab struct {
	L, A, B float64
}

// White is a reference white on the same scale as XYZ.
type White XYZ

// D65 is the 2° standard observer D65 white.
var D65 = White{X: 95.047, Y: 100.0, Z: 108.883}

// SRGBToXYZ maps linear sRGB to XYZ under D65. It belongs to the sRGB
// companding in Linearize; change neither without the other.
var SRGBToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// Linearize removes the sRGB gamma encoding from one channel in [0,1].
func Linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// ToXYZ converts the colour channels to XYZ. Alpha is ignored and the
// channels are not range checked.
func ToXYZ(c Color) XYZ {
	r := Linearize(c.R) * 100
	g := Linearize(c.G) * 100
	b := Linearize(c.B) * 100

	m := &SRGBToXYZ
	return XYZ{
		X: m[0][0]*r + m[0][1]*g + m[0][2]*b,
		Y: m[1][0]*r + m[1][1]*g + m[1][2]*b,
		Z: m[2][0]*r + m[2][1]*g + m[2][2]*b,
	}
}

// XYZToLab converts an XYZ value to L*a*b* relative to the white w.
func XYZToLab(v XYZ, w White) Lab {
	fx := labResponse(v.X / w.X)
	fy := labResponse(v.Y / w.Y)
	fz := labResponse(v.Z / w.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labResponse(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

// Chroma is the length of the (a, b) vector.
func (l Lab) Chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// Hue is the angle of the (a, b) vector in degrees, in [0,360). The hue of
// an achromatic colour is 0.
func (l Lab) Hue() float64 {
	return hueAngle(l.B, l.A)
}

// Domain selects what a Converter does with channels outside [0,1].
type Domain int

const (
	// Strict rejects out-of-range channels with a *ChannelError.
	Strict Domain = iota
	// Lenient clamps every channel to [0,1] before converting.
	Lenient
)

func (d Domain) apply(c Color) (Color, error) {
	if d == Lenient {
		return c.Clamp(), nil
	}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

func (d Domain) String() string {
	if d == Lenient {
		return "lenient"
	}
	return "strict"
}

// Converter turns a device colour into L*a*b*.
type Converter interface {
	ToLab(c Color) (Lab, error)
}

// Standard is the sRGB → linear RGB → XYZ → L*a*b* (D65) pipeline.
type Standard struct {
	Domain Domain
}

// ToLab implements Converter.
func (s Standard) ToLab(c Color) (Lab, error) {
	c, err := s.Domain.apply(c)
	if err != nil {
		return Lab{}, err
	}

	xyz := ToXYZ(c)
	if err := CheckFinite("xyz", xyz.X, xyz.Y, xyz.Z); err != nil {
		return Lab{}, err
	}
	lab := XYZToLab(xyz, D65)
	if err := CheckFinite("lab", lab.L, lab.A, lab.B); err != nil {
		return Lab{}, err
	}
	return lab, nil
}

// ToLab converts c with the Standard pipeline in Strict mode.
func ToLab(c Color) (Lab, error) {
	return Standard{}.ToLab(c)
}
