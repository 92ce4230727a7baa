package theme

import (
	"fmt"
	"image"
	"sort"
	"strconv"

	"github.com/esimov/colorquant"
	"github.com/flosch/pongo2"
	"github.com/mmuldo/colormatch/cie"
	cimage "github.com/mmuldo/colormatch/image"
	"github.com/mmuldo/colormatch/palette"
)

// Palette represents a set of colors and their associated 'roles' (e.g. color0, color1, etc.).
type Palette map[int]ColorVol

// Theme is the template context built from a Palette.
type Theme map[string]interface{}

// ColorVol represents a color, its Lab equivalent, the number of pixels it takes up in a
// given image and the catalog entry nearest to it.
type ColorVol struct {
	Color cie.Color
	Lab   cie.Lab
	Count int
	Match palette.Result[int]
}

type byCount []ColorVol

func (cvs byCount) Len() int { return len(cvs) }
func (cvs byCount) Less(i, j int) bool {
	if cvs[i].Count != cvs[j].Count {
		return cvs[i].Count > cvs[j].Count
	}
	return cvs[i].Lab.L < cvs[j].Lab.L
}
func (cvs byCount) Swap(i, j int) { cvs[i], cvs[j] = cvs[j], cvs[i] }

type byDarkness []ColorVol

func (cvs byDarkness) Len() int { return len(cvs) }
func (cvs byDarkness) Less(i, j int) bool {
	return cvs[i].Lab.L < cvs[j].Lab.L
}
func (cvs byDarkness) Swap(i, j int) { cvs[i], cvs[j] = cvs[j], cvs[i] }

//**exported functions**//

// GetColors retrieves a set of at most `num` colors that best represent img, most prevalent
// first, each named by its nearest entry in cat.
func GetColors(img image.Image, num int, cat *palette.Catalog[int]) ([]ColorVol, error) {
	if num < 1 {
		return nil, fmt.Errorf("palette size must be positive, got %d", num)
	}

	// quantize image
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)

	ranked := cimage.RankColors(cimage.GetColors(o, 1))
	if len(ranked) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}
	if len(ranked) > num {
		ranked = ranked[:num]
	}

	conv := cat.Converter()
	cvs := make([]ColorVol, 0, len(ranked))
	for _, cc := range ranked {
		lab, e := conv.ToLab(cc.Color)
		if e != nil {
			return nil, e
		}
		m, e := cat.Match(cc.Color)
		if e != nil {
			return nil, e
		}
		cvs = append(cvs, ColorVol{cc.Color, lab, cc.Count, m})
	}

	return cvs, nil
}

// Delegate assigns roles to colors: the darker half first, then the lighter half, each
// half ordered by prevalence.
func Delegate(cvs []ColorVol) Palette {
	p := make(Palette)

	// group colors into darks and lights
	sorted := append([]ColorVol(nil), cvs...)
	sort.Sort(byDarkness(sorted))
	d := sorted[:len(sorted)/2]
	l := sorted[len(sorted)/2:]

	// assign roles by prevalence
	sort.Sort(byCount(d))
	sort.Sort(byCount(l))
	for i, c := range d {
		p[i] = c
	}
	for i, c := range l {
		p[len(d)+i] = c
	}

	return p
}

// Keys returns the roles of p in ascending order.
func (p Palette) Keys() []int {
	var keys []int
	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Create creates a new theme based on a provided palette and other options. Every role k
// gets "colorK" (hex), "colorK_name" (matched label) and "colorK_delta" (ΔE00 to it).
func Create(p Palette, opts map[string]interface{}) Theme {
	t := make(Theme)
	colors := make([]map[string]interface{}, 0, len(p))

	for _, k := range p.Keys() {
		cv := p[k]
		role := "color" + strconv.Itoa(k)
		hex := cv.Color.Hex()

		t[role] = hex
		t[role+"_name"] = cv.Match.Label
		t[role+"_delta"] = cv.Match.Distance
		colors = append(colors, map[string]interface{}{
			"role":  role,
			"color": cv.Color,
			"hex":   hex,
			"name":  cv.Match.Label,
			"delta": cv.Match.Distance,
			"count": cv.Count,
			"lab":   cv.Lab,
		})
	}
	t["colors"] = colors

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, len(p))

	return t
}

// DefaultTemplate lists every role of a theme.
const DefaultTemplate = `{% for c in colors %}{{ c.role }} = {{ c.hex }}  {{ c.name }} (ΔE00 {{ c.delta|floatformat:2 }})
{% endfor %}background = {{ background }}
foreground = {{ foreground }}
`

// Render executes a pongo2 template with t as its context.
func Render(t Theme, tpl string) (string, error) {
	x, e := pongo2.FromString(tpl)
	if e != nil {
		return "", fmt.Errorf("parse template: %w", e)
	}
	return execute(x, t)
}

// RenderFile executes the pongo2 template at path with t as its context.
func RenderFile(t Theme, path string) (string, error) {
	x, e := pongo2.FromFile(path)
	if e != nil {
		return "", fmt.Errorf("parse template %s: %w", path, e)
	}
	return execute(x, t)
}

//**helper functions**//

func execute(x *pongo2.Template, t Theme) (string, error) {
	o, e := x.Execute(pongo2.Context(t))
	if e != nil {
		return "", fmt.Errorf("render theme: %w", e)
	}
	return o, nil
}

func setDefaults(t Theme, n int) {
	if _, ok := t["background"]; !ok {
		t["background"] = t["color0"]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok {
		// most prevalent of the lighter half
		t["foreground"] = t["color"+strconv.Itoa(n/2)]
	}
}

func init() {
	// themes are config files, not HTML
	pongo2.SetAutoescape(false)
}
