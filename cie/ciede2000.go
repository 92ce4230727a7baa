package cie

import (
	"fmt"
	"math"
)

// Weights are the CIEDE2000 parametric factors kL, kC and kH. A zero field
// stands for the reference value 1, so the zero Weights is the default.
type Weights struct {
	KL, KC, KH float64
}

// DefaultWeights are the reference viewing conditions.
var DefaultWeights = Weights{KL: 1, KC: 1, KH: 1}

// Validate rejects negative, NaN and infinite factors.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"kL", w.KL}, {"kC", w.KC}, {"kH", w.KH}} {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: weight %s = %g", ErrInvalidInput, f.name, f.v)
		}
	}
	return nil
}

func (w Weights) factors() (kl, kc, kh float64) {
	return orOne(w.KL), orOne(w.KC), orOne(w.KH)
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// 25^7
const pow25to7 = 6103515625.0

// Difference returns the CIEDE2000 colour difference ΔE00 between x and y
// under the reference weights.
func Difference(x, y Lab) float64 {
	return Weights{}.Difference(x, y)
}

// Difference returns ΔE00 between x and y under w, following Sharma, Wu and
// Dalal (2004). The result is symmetric in x and y and never negative.
func (w Weights) Difference(x, y Lab) float64 {
	kl, kc, kh := w.factors()

	cbar := (math.Hypot(x.A, x.B) + math.Hypot(y.A, y.B)) / 2
	cbar7 := math.Pow(cbar, 7)
	g := 0.5 * (1 - math.Sqrt(cbar7/(cbar7+pow25to7)))

	a1 := (1 + g) * x.A
	a2 := (1 + g) * y.A
	c1 := math.Hypot(a1, x.B)
	c2 := math.Hypot(a2, y.B)
	h1 := hueAngle(x.B, a1)
	h2 := hueAngle(y.B, a2)

	dL := y.L - x.L
	dC := c2 - c1
	dH := 2 * math.Sqrt(c1*c2) * math.Sin(radians(hueDelta(h1, h2, c1*c2)/2))

	lbar := (x.L + y.L) / 2
	cbarp := (c1 + c2) / 2
	hbar := meanHue(h1, h2, c1*c2)

	t := 1 -
		0.17*math.Cos(radians(hbar-30)) +
		0.24*math.Cos(radians(2*hbar)) +
		0.32*math.Cos(radians(3*hbar+6)) -
		0.20*math.Cos(radians(4*hbar-63))
	dTheta := 30 * math.Exp(-math.Pow((hbar-275)/25, 2))

	cbarp7 := math.Pow(cbarp, 7)
	rc := 2 * math.Sqrt(cbarp7/(cbarp7+pow25to7))
	l50 := (lbar - 50) * (lbar - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cbarp
	sh := 1 + 0.015*cbarp*t
	rt := -math.Sin(radians(2*dTheta)) * rc

	p1 := dL / (kl * sl)
	p2 := dC / (kc * sc)
	p3 := dH / (kh * sh)
	sum := p1*p1 + p2*p2 + p3*p3 + rt*p2*p3
	if sum < 0 {
		// |rt| <= 2, so only rounding gets here.
		sum = 0
	}
	return math.Sqrt(sum)
}

// hueAngle is atan2(b, a) in degrees mapped to [0,360), and 0 when both
// components are zero.
func hueAngle(b, a float64) float64 {
	if b == 0 && a == 0 {
		return 0
	}
	h := degrees(math.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// hueDelta is Δh', the signed hue difference taking the short way round.
func hueDelta(h1, h2, cprod float64) float64 {
	d := h2 - h1
	switch {
	case cprod == 0:
		return 0
	case math.Abs(d) <= 180:
		return d
	case d > 180:
		return d - 360
	default:
		return d + 360
	}
}

// meanHue is h̄', the mean of two hues taking the short way round.
func meanHue(h1, h2, cprod float64) float64 {
	switch {
	case cprod == 0:
		return h1 + h2
	case math.Abs(h1-h2) <= 180:
		return (h1 + h2) / 2
	case h1+h2 < 360:
		return (h1 + h2 + 360) / 2
	default:
		return (h1 + h2 - 360) / 2
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
