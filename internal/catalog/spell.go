package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Magical traditions.
const (
	TraditionArcane = "arcane"
	TraditionDivine = "divine"
	TraditionOccult = "occult"
	TraditionPrimal = "primal"
)

// Spell defines a castable spell. Rank 0 spells are cantrips.
//
// Precondition: ID and Name must be non-empty and Rank in [0, 10] after loading.
type Spell struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Rank        int      `yaml:"rank"`
	Traditions  []string `yaml:"traditions"`
	Ritual      bool     `yaml:"ritual"`
	Traits      []string `yaml:"traits"`
	Description string   `yaml:"description"`
}

// InTradition reports whether the spell belongs to the given magical tradition.
func (s *Spell) InTradition(tradition string) bool {
	for _, t := range s.Traditions {
		if t == tradition {
			return true
		}
	}
	return false
}

// LoadSpells reads all .yaml files in dir, each holding a list of spells
// under a top-level "spells" key.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed spells (may be empty slice) or a non-nil error.
func LoadSpells(dir string) ([]*Spell, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var spells []*Spell
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var doc struct {
			Spells []*Spell `yaml:"spells"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing spell file %s: %w", path, err)
		}
		for _, s := range doc.Spells {
			if s.ID == "" || s.Name == "" {
				return nil, fmt.Errorf("spell file %s: id and name must be non-empty", path)
			}
			if s.Rank < 0 || s.Rank > 10 {
				return nil, fmt.Errorf("spell file %s: spell %s rank must be 0-10, got %d", path, s.ID, s.Rank)
			}
			spells = append(spells, s)
		}
	}
	return spells, nil
}
