package cmd

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colormatch/cie"
	"github.com/mmuldo/colormatch/palette"
)

func (a *app) domain() cie.Domain {
	if a.v.GetBool("lenient") {
		return cie.Lenient
	}
	return cie.Strict
}

func (a *app) converter() (cie.Converter, error) {
	switch name := a.v.GetString("converter"); name {
	case "", "standard":
		return cie.Standard{Domain: a.domain()}, nil
	case "chromath":
		return cie.NewChromath("d65", a.domain())
	case "chromath-d50":
		return cie.NewChromath("d50", a.domain())
	default:
		return nil, fmt.Errorf("unknown converter %q", name)
	}
}

func (a *app) weights() cie.Weights {
	return cie.Weights{
		KL: a.v.GetFloat64("weights.kl"),
		KC: a.v.GetFloat64("weights.kc"),
		KH: a.v.GetFloat64("weights.kh"),
	}
}

// catalog builds the catalog from, in order of preference, the config file's
// catalog list, the catalog file, or the built-in system catalog. The list is
// taken from the config file only; COLORMATCH_CATALOG is ignored.
func (a *app) catalog() (*palette.Catalog[int], error) {
	conv, err := a.converter()
	if err != nil {
		return nil, err
	}
	opts := []palette.Option{palette.WithConverter(conv), palette.WithWeights(a.weights())}

	if a.v.InConfig("catalog") {
		var specs []palette.Spec
		if err := a.v.UnmarshalKey("catalog", &specs); err != nil {
			return nil, fmt.Errorf("config catalog: %w", err)
		}
		entries, err := palette.FromSpecs(specs)
		if err != nil {
			return nil, fmt.Errorf("config catalog: %w", err)
		}
		return palette.New(entries, opts...)
	}

	if f := a.v.GetString("catalog_file"); f != "" {
		path, err := homedir.Expand(f)
		if err != nil {
			return nil, err
		}
		return palette.LoadFile(path, opts...)
	}

	return palette.System(opts...)
}

// parseColors parses every argument with cie.Parse.
func parseColors(args []string) ([]cie.Color, error) {
	cs := make([]cie.Color, 0, len(args))
	for _, s := range args {
		c, err := cie.Parse(s)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

