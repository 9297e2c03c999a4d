// Package catalog defines the static game-content catalog: classes, feats,
// spells, specializations, and skills, loaded from YAML content directories.
// Catalog entries are immutable once loaded; resolvers only read them.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spellcasting feature kinds recognised by the rules engine.
const (
	// FeatureSpellbook is a tradition-restricted spellbook with ad-hoc
	// learned spells and a single daily preparation slot.
	FeatureSpellbook = "spellbook"
	// FeatureBonusPerRank grants one extra known spell per castable spell rank.
	FeatureBonusPerRank = "bonus_per_rank"
)

// Spellcasting declares a class's special spellcasting feature as data so the
// rules engine never branches on a class ID.
type Spellcasting struct {
	// Feature is the feature kind: "spellbook" or "bonus_per_rank".
	Feature string `yaml:"feature"`
	// Name keys the character's spellbook sub-state for this feature.
	Name string `yaml:"name"`
	// Tradition restricts eligible spells: "arcane", "divine", "occult", or "primal".
	Tradition string `yaml:"tradition"`
}

// ClassFeature describes a single class feature gained at a specific level.
type ClassFeature struct {
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	Description string `yaml:"description"`
}

// Class defines a playable character class.
//
// Precondition: ID, Name, and KeyAbility must be non-empty after loading.
type Class struct {
	ID                string            `yaml:"id"`
	Name              string            `yaml:"name"`
	Description       string            `yaml:"description"`
	KeyAbility        string            `yaml:"key_ability"`
	HitPointsPerLevel int               `yaml:"hit_points_per_level"`
	BaseSkillSlots    int               `yaml:"base_skill_slots"`
	TrainedSkills     []string          `yaml:"trained_skills"`
	Proficiencies     map[string]string `yaml:"proficiencies"`
	Features          []ClassFeature    `yaml:"features"`
	Spellcasting      *Spellcasting     `yaml:"spellcasting"`
}

// LoadClasses reads all .yaml files in dir and parses each as a Class.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c Class
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", path, err)
		}
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("class file %s: id and name must be non-empty", path)
		}
		classes = append(classes, &c)
	}
	return classes, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
