package palette

import "github.com/mmuldo/colormatch/cie"

// systemLabel is the grey the platform label colours are tinted with.
var systemLabel = [3]float64{60.0 / 255, 60.0 / 255, 67.0 / 255}

// SystemEntries returns the built-in reference colours: the light-mode
// label colours followed by the named standard colours. Label and black are
// both opaque black; under ascending-id scanning label (1) wins.
func SystemEntries() []Entry[int] {
	r, g, b := systemLabel[0], systemLabel[1], systemLabel[2]
	return []Entry[int]{
		{1, cie.RGB(0, 0, 0), "label"},
		{2, cie.RGBA(r, g, b, 0.6), "secondary label"},
		{3, cie.RGBA(r, g, b, 0.3), "tertiary label"},
		{4, cie.RGBA(r, g, b, 0.18), "quaternary label"},
		{5, cie.RGB(1, 0, 0), "red"},
		{6, cie.RGB(0, 1, 0), "green"},
		{7, cie.RGB(0, 0, 1), "blue"},
		{8, cie.RGB(1, 1, 0), "yellow"},
		{9, cie.RGB(1, 0.5, 0), "orange"},
		{10, cie.RGB(1, 1, 1), "white"},
		{11, cie.RGB(0.5, 0, 0.5), "purple"},
		{12, cie.RGB(0, 0, 0), "black"},
	}
}

// System builds a catalog of SystemEntries.
func System(opts ...Option) (*Catalog[int], error) {
	return New(SystemEntries(), opts...)
}
