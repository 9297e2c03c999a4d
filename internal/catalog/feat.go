package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feat categories. Every feat belongs to exactly one.
const (
	FeatAncestry  = "ancestry"
	FeatClass     = "class"
	FeatGeneral   = "general"
	FeatSkill     = "skill"
	FeatArchetype = "archetype"
)

// ValidFeatCategory reports whether category is a recognised feat category.
func ValidFeatCategory(category string) bool {
	switch category {
	case FeatAncestry, FeatClass, FeatGeneral, FeatSkill, FeatArchetype:
		return true
	}
	return false
}

// Feat defines a selectable feat.
//
// Precondition: ID, Name, and a valid Category must be set after loading.
type Feat struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Level         int      `yaml:"level"`
	Category      string   `yaml:"category"`
	Prerequisites string   `yaml:"prerequisites"`
	Rarity        string   `yaml:"rarity"`
	Traits        []string `yaml:"traits"`
	Description   string   `yaml:"description"`
}

// LoadFeats reads all .yaml files in dir and parses each as a list of feats.
// Feat files hold multiple entries under a top-level "feats" key so that
// related feats (one class's feat chain) can live in one file.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed feats (may be empty slice) or a non-nil error.
func LoadFeats(dir string) ([]*Feat, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var feats []*Feat
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var doc struct {
			Feats []*Feat `yaml:"feats"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing feat file %s: %w", path, err)
		}
		for _, f := range doc.Feats {
			if f.ID == "" || f.Name == "" {
				return nil, fmt.Errorf("feat file %s: id and name must be non-empty", path)
			}
			if !ValidFeatCategory(f.Category) {
				return nil, fmt.Errorf("feat file %s: feat %s has unknown category %q", path, f.ID, f.Category)
			}
			feats = append(feats, f)
		}
	}
	return feats, nil
}
