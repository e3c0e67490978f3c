package scoring

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type zodiacCopy struct {
	Name       string `yaml:"name"`
	GenZ       string `yaml:"genZ"`
	Millennial string `yaml:"millennial"`
}

type copyCatalog struct {
	Quotes []string              `yaml:"quotes"`
	Zodiac map[string]zodiacCopy `yaml:"zodiac"`
}

var catalog = mustLoadCatalog(catalogYAML)

func mustLoadCatalog(data []byte) copyCatalog {
	c, err := loadCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("scoring: %v", err))
	}
	return c
}

func loadCatalog(data []byte) (copyCatalog, error) {
	var c copyCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return copyCatalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Quotes) == 0 {
		return copyCatalog{}, fmt.Errorf("catalog has no quotes")
	}
	for _, sign := range zodiacSigns {
		z, ok := c.Zodiac[sign]
		if !ok || z.Name == "" || z.GenZ == "" || z.Millennial == "" {
			return copyCatalog{}, fmt.Errorf("catalog entry for %s is incomplete", sign)
		}
	}
	return c, nil
}

// Quotes returns a copy of the motivational quote list.
func Quotes() []string {
	out := make([]string, len(catalog.Quotes))
	copy(out, catalog.Quotes)
	return out
}
