package cie

import (
	"fmt"

	"github.com/jkl1337/go-chromath"
)

type rgbToXYZ interface {
	Convert(chromath.RGB) chromath.XYZ
}

type xyzToLab interface {
	Invert(chromath.XYZ) chromath.Lab
}

// Chromath converts through go-chromath's sRGB and L*a*b* transformers.
// Unlike Standard it can target a reference white other than D65, adapting
// with the Bradford transform.
type Chromath struct {
	Domain Domain
	White  string

	rgb rgbToXYZ
	lab xyzToLab
}

// NewChromath returns a converter targeting white, which is "d65" or "d50".
func NewChromath(white string, d Domain) (*Chromath, error) {
	c := &Chromath{Domain: d, White: white}
	switch white {
	case "", "d65":
		c.White = "d65"
		c.rgb = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
		c.lab = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	case "d50":
		c.rgb = chromath.NewRGBTransformer(
			&chromath.SpaceSRGB,
			&chromath.AdaptationBradford,
			&chromath.IlluminantRefD50,
			&chromath.Scaler8bClamping,
			1.0,
			nil,
		)
		c.lab = chromath.NewLabTransformer(&chromath.IlluminantRefD50)
	default:
		return nil, fmt.Errorf("%w: unknown reference white %q", ErrInvalidInput, white)
	}
	return c, nil
}

// ToLab implements Converter.
func (c *Chromath) ToLab(col Color) (Lab, error) {
	col, err := c.Domain.apply(col)
	if err != nil {
		return Lab{}, err
	}

	// the transformers take channels on the 0-255 scale
	rgb := chromath.RGB{col.R * 255, col.G * 255, col.B * 255}
	v := c.lab.Invert(c.rgb.Convert(rgb))
	lab := Lab{L: v.L(), A: v.A(), B: v.B()}
	if err := CheckFinite("chromath lab", lab.L, lab.A, lab.B); err != nil {
		return Lab{}, err
	}
	return lab, nil
}
