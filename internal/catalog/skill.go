package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkillDefinition defines a skill and its governing ability.
//
// Precondition: Name and Ability must be non-empty after loading.
type SkillDefinition struct {
	Name        string `yaml:"name"`
	Ability     string `yaml:"ability"`
	Description string `yaml:"description"`
}

// LoadSkills reads all .yaml files in dir, each holding a list of skill
// definitions under a top-level "skills" key.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed skills (may be empty slice) or a non-nil error.
func LoadSkills(dir string) ([]*SkillDefinition, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var skills []*SkillDefinition
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var doc struct {
			Skills []*SkillDefinition `yaml:"skills"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing skill file %s: %w", path, err)
		}
		for _, s := range doc.Skills {
			if s.Name == "" || s.Ability == "" {
				return nil, fmt.Errorf("skill file %s: name and ability must be non-empty", path)
			}
			skills = append(skills, s)
		}
	}
	return skills, nil
}
