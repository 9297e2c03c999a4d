package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpecializationOption is one selectable option within a specialization type
// (an arcane school, a muse, a druidic order).
type SpecializationOption struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Source tags the sourcebook or content pack the option comes from.
	Source string `yaml:"source"`
	// MinLevel is the lowest character level at which the option unlocks.
	// Zero means available whenever the type itself is.
	MinLevel int `yaml:"min_level"`
	// Availability is an optional Lua predicate for availability rules a
	// flat minimum level cannot express. It sees `level` and `class` and
	// must evaluate to a boolean. Empty means MinLevel alone decides.
	Availability string `yaml:"availability"`
}

// SpecializationType is a class-specific multi-select choice gated by level.
// Level gates live here as data; the eligibility engine stays class-agnostic.
//
// Precondition: ID, ClassID, and Name must be non-empty after loading;
// MaxSelections must be >= 1.
type SpecializationType struct {
	ID            string                  `yaml:"id"`
	ClassID       string                  `yaml:"class_id"`
	Name          string                  `yaml:"name"`
	Description   string                  `yaml:"description"`
	Level         int                     `yaml:"level"`
	MaxSelections int                     `yaml:"max_selections"`
	Options       []*SpecializationOption `yaml:"options"`
}

// LoadSpecializations reads all .yaml files in dir and parses each as a
// SpecializationType.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed types (may be empty slice) or a non-nil error.
func LoadSpecializations(dir string) ([]*SpecializationType, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	types := make([]*SpecializationType, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var st SpecializationType
		if err := yaml.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("parsing specialization file %s: %w", path, err)
		}
		if st.ID == "" || st.ClassID == "" || st.Name == "" {
			return nil, fmt.Errorf("specialization file %s: id, class_id, and name must be non-empty", path)
		}
		if st.MaxSelections < 1 {
			return nil, fmt.Errorf("specialization file %s: max_selections must be >= 1, got %d", path, st.MaxSelections)
		}
		types = append(types, &st)
	}
	return types, nil
}
