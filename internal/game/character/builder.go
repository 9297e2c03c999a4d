package character

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/soren-hale/charforge/internal/catalog"
)

// Build constructs a new level-1 Character for the given class. All six
// ability scores start at 10; the class key ability receives a +2 boost and
// the class's automatically trained skills are granted at trained rank.
// Ancestry and background grants arrive later as separate bonus sources.
//
// Precondition: name must be non-empty; class must be non-nil.
// Postcondition: Returns a Character ready for persistence, or a non-nil error.
func Build(name string, class *catalog.Class, variants VariantFlags) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if class == nil {
		return nil, errors.New("class must not be nil")
	}

	abilities := BaseScores()
	key := Ability(class.KeyAbility)
	if ValidAbility(key) {
		abilities = abilities.WithScore(key, abilities.Score(key)+2)
	}

	skills := make([]TrainedSkill, 0, len(class.TrainedSkills))
	for _, skillName := range class.TrainedSkills {
		skills = append(skills, TrainedSkill{
			Name:   skillName,
			Rank:   Trained,
			Source: SourceClass,
		})
	}

	now := time.Now().UTC()
	return &Character{
		ID:              uuid.NewString(),
		Name:            name,
		ClassID:         class.ID,
		Level:           1,
		Abilities:       abilities,
		Boosts:          make(map[int][]Ability),
		Variants:        variants,
		Skills:          skills,
		Specializations: make(map[string][]string),
		Spellbooks:      make(map[string]*SpellbookState),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
