// Package character defines the character snapshot model and pure creation
// logic. Resolvers treat a Character as an immutable value: they clone it,
// mutate the clone, and return the clone.
package character

import (
	"time"
)

// Ability identifies one of the six ability scores.
type Ability string

// The six abilities.
const (
	Strength     Ability = "strength"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Charisma     Ability = "charisma"
)

// Abilities lists all six abilities in canonical order.
var Abilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// ValidAbility reports whether a names one of the six abilities.
func ValidAbility(a Ability) bool {
	switch a {
	case Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma:
		return true
	}
	return false
}

// AbilityScores holds the six ability score values for a character.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// BaseScores returns ability scores all set to the base value of 10.
func BaseScores() AbilityScores {
	return AbilityScores{
		Strength: 10, Dexterity: 10, Constitution: 10,
		Intelligence: 10, Wisdom: 10, Charisma: 10,
	}
}

// Score returns the value for the given ability, or 0 for an unknown ability.
func (a AbilityScores) Score(ab Ability) int {
	switch ab {
	case Strength:
		return a.Strength
	case Dexterity:
		return a.Dexterity
	case Constitution:
		return a.Constitution
	case Intelligence:
		return a.Intelligence
	case Wisdom:
		return a.Wisdom
	case Charisma:
		return a.Charisma
	}
	return 0
}

// WithScore returns a copy with the given ability set to value. Unknown
// abilities return the receiver unchanged.
func (a AbilityScores) WithScore(ab Ability, value int) AbilityScores {
	switch ab {
	case Strength:
		a.Strength = value
	case Dexterity:
		a.Dexterity = value
	case Constitution:
		a.Constitution = value
	case Intelligence:
		a.Intelligence = value
	case Wisdom:
		a.Wisdom = value
	case Charisma:
		a.Charisma = value
	}
	return a
}

// Modifier returns the ability modifier for a score: (score - 10) / 2,
// rounding down for odd scores below 10.
func Modifier(score int) int {
	if score < 10 {
		return (score - 11) / 2
	}
	return (score - 10) / 2
}

// TrainedSkill is one skill the character is trained in, with its governing
// ability and current proficiency rank.
type TrainedSkill struct {
	Name    string      `json:"name"`
	Ability Ability     `json:"ability"`
	Rank    Proficiency `json:"rank"`
	// Source records where the training came from: "class", "background",
	// "bonus", or "choice".
	Source string `json:"source"`
}

// Training sources.
const (
	SourceClass      = "class"
	SourceBackground = "background"
	SourceBonus      = "bonus"
	SourceChoice     = "choice"
)

// CharacterFeat is one feat the character has taken.
type CharacterFeat struct {
	FeatID string `json:"feat_id"`
	// Level is the character level at which the feat was acquired.
	Level    int    `json:"level"`
	Category string `json:"category"`
	// Choices holds feat sub-choices keyed by choice name.
	Choices map[string]string `json:"choices,omitempty"`
}

// SpellbookState is the per-feature spellcasting sub-state. Which fields are
// used depends on the feature kind declared on the class catalog entry.
type SpellbookState struct {
	// Spells are the learned spell IDs in the order they were added.
	Spells []string `json:"spells,omitempty"`
	// DailyPreparation is the single prepared spell ID; empty means none.
	// Invariant: empty or a member of Spells.
	DailyPreparation string `json:"daily_preparation,omitempty"`
	// ExtraSpells maps spell rank to the single bonus spell chosen for it.
	ExtraSpells map[int]string `json:"extra_spells,omitempty"`
}

// Contains reports whether spellID is a member of the learned spell list.
func (sb *SpellbookState) Contains(spellID string) bool {
	for _, id := range sb.Spells {
		if id == spellID {
			return true
		}
	}
	return false
}

// VariantFlags holds the optional-rule toggles affecting resolver behavior.
type VariantFlags struct {
	// GradualBoosts replaces the four-boost batches at levels 5/10/15/20
	// with one boost at every non-pause level.
	GradualBoosts bool `json:"gradual_boosts"`
}

// Character is a player character snapshot: the single source of truth for
// all derived state. ID is assigned at creation; AccountID is set by the
// persistence layer.
type Character struct {
	ID        string
	AccountID int64

	Name    string
	ClassID string
	Level   int

	Abilities AbilityScores
	// Boosts maps a level to the abilities boosted at that level-up event.
	Boosts   map[int][]Ability
	Variants VariantFlags

	Skills []TrainedSkill
	Feats  []CharacterFeat
	// Specializations maps a specialization type ID to the selected option
	// IDs in selection order.
	Specializations map[string][]string
	// Spellbooks holds spellcasting sub-state keyed by feature name.
	Spellbooks map[string]*SpellbookState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the character. Mutating the clone never
// affects the original snapshot.
func (c *Character) Clone() *Character {
	out := *c

	if c.Boosts != nil {
		out.Boosts = make(map[int][]Ability, len(c.Boosts))
		for lvl, picks := range c.Boosts {
			out.Boosts[lvl] = append([]Ability(nil), picks...)
		}
	}
	out.Skills = append([]TrainedSkill(nil), c.Skills...)
	if c.Feats != nil {
		out.Feats = make([]CharacterFeat, len(c.Feats))
		for i, f := range c.Feats {
			out.Feats[i] = f
			if f.Choices != nil {
				out.Feats[i].Choices = make(map[string]string, len(f.Choices))
				for k, v := range f.Choices {
					out.Feats[i].Choices[k] = v
				}
			}
		}
	}
	if c.Specializations != nil {
		out.Specializations = make(map[string][]string, len(c.Specializations))
		for id, sel := range c.Specializations {
			out.Specializations[id] = append([]string(nil), sel...)
		}
	}
	if c.Spellbooks != nil {
		out.Spellbooks = make(map[string]*SpellbookState, len(c.Spellbooks))
		for name, sb := range c.Spellbooks {
			cp := &SpellbookState{
				Spells:           append([]string(nil), sb.Spells...),
				DailyPreparation: sb.DailyPreparation,
			}
			if sb.ExtraSpells != nil {
				cp.ExtraSpells = make(map[int]string, len(sb.ExtraSpells))
				for rank, id := range sb.ExtraSpells {
					cp.ExtraSpells[rank] = id
				}
			}
			out.Spellbooks[name] = cp
		}
	}
	return &out
}

// MaxSpellRank returns the highest castable spell rank at the character's
// level: rank 1 at levels 1-2, rank 2 at 3-4, up to rank 10 at 19-20.
func (c *Character) MaxSpellRank() int {
	if c.Level < 1 {
		return 0
	}
	return (c.Level + 1) / 2
}

// SkillRank returns the character's proficiency rank in the named skill.
// Skills not in the trained list are Untrained.
func (c *Character) SkillRank(name string) Proficiency {
	rank := Untrained
	for _, s := range c.Skills {
		if s.Name == name && s.Rank > rank {
			rank = s.Rank
		}
	}
	return rank
}
