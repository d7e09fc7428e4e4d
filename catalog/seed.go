package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/krishkalaria12/plantdoc-serve/models"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is the on-disk form of the reference tables.
type Catalog struct {
	Plants   []models.Plant   `yaml:"plants"`
	Diseases []models.Disease `yaml:"diseases"`
}

// Default returns the catalog bundled with the binary: tomato and the
// diseases the classifier was trained on.
func Default() (*Catalog, error) {
	return Decode(bytes.NewReader(defaultCatalog))
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every record carries an explicit id, since seeding
// upserts by primary key. plant_id is not checked against the plants.
func (c *Catalog) Validate() error {
	seen := make(map[uint]bool, len(c.Plants))
	for i, p := range c.Plants {
		if p.ID == 0 {
			return fmt.Errorf("plant %d (%q): missing id", i, p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("plant %d (%q): duplicate id %d", i, p.Name, p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[uint]bool, len(c.Diseases))
	for i, d := range c.Diseases {
		if d.ID == 0 {
			return fmt.Errorf("disease %d (%q): missing id", i, d.Name)
		}
		if seen[d.ID] {
			return fmt.Errorf("disease %d (%q): duplicate id %d", i, d.Name, d.ID)
		}
		seen[d.ID] = true
	}

	return nil
}
