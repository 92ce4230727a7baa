package palette

import (
	"fmt"
	"os"

	"github.com/mmuldo/colormatch/cie"
	"gopkg.in/yaml.v3"
)

// Spec is the serialized form of an Entry, as found in catalog files and in
// the config file. Color accepts anything cie.Parse does.
type Spec struct {
	ID    int    `yaml:"id" mapstructure:"id"`
	Label string `yaml:"label" mapstructure:"label"`
	Color string `yaml:"color" mapstructure:"color"`
}

// FromSpecs parses the colour of every spec.
func FromSpecs(specs []Spec) ([]Entry[int], error) {
	entries := make([]Entry[int], 0, len(specs))
	for _, s := range specs {
		c, err := cie.Parse(s.Color)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", s.ID, s.Label, err)
		}
		entries = append(entries, Entry[int]{ID: s.ID, Color: c, Label: s.Label})
	}
	return entries, nil
}

// Parse decodes a YAML catalog: a list of {id, label, color} mappings.
func Parse(data []byte, opts ...Option) (*Catalog[int], error) {
	var specs []Spec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	entries, err := FromSpecs(specs)
	if err != nil {
		return nil, err
	}
	return New(entries, opts...)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string, opts ...Option) (*Catalog[int], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
