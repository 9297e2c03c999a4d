package rules

import (
	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

// OverLimitPolicy selects how ApplyTraining treats a selection exceeding the
// slot budget. The upstream behavior is ambiguous, so the policy is explicit
// configuration.
type OverLimitPolicy string

const (
	// OverLimitTruncate keeps the first slots entries in selection order.
	OverLimitTruncate OverLimitPolicy = "truncate"
	// OverLimitReject refuses the whole selection, returning the snapshot
	// unchanged.
	OverLimitReject OverLimitPolicy = "reject"
)

// ValidOverLimitPolicy reports whether policy is a recognised policy.
func ValidOverLimitPolicy(policy OverLimitPolicy) bool {
	return policy == OverLimitTruncate || policy == OverLimitReject
}

// TrainingSlots returns the number of manually selectable skill-training
// slots: the class base plus the intelligence modifier when positive. A
// negative modifier never reduces slots below the class base.
func TrainingSlots(classBaseSlots, intModifier int) int {
	if intModifier > 0 {
		return classBaseSlots + intModifier
	}
	return classBaseSlots
}

// TrainableSkills returns the skill names manual selection may draw from:
// every catalog skill not already granted by an automatic source.
func TrainableSkills(all []*catalog.SkillDefinition, autoTrained, background, bonus []string) []string {
	covered := make(map[string]bool, len(autoTrained)+len(background)+len(bonus))
	for _, name := range autoTrained {
		covered[name] = true
	}
	for _, name := range background {
		covered[name] = true
	}
	for _, name := range bonus {
		covered[name] = true
	}

	out := make([]string, 0, len(all))
	for _, sk := range all {
		if !covered[sk.Name] {
			out = append(out, sk.Name)
		}
	}
	return out
}

// ApplyTraining commits the manually selected trained skills and returns the
// new snapshot. Skills granted by non-choice sources are kept as-is; the
// previous choice-sourced set is replaced wholesale, so deselecting a skill
// reverts it to untrained. Entries that are unknown to the catalog or already
// covered by an automatic source are skipped. A selection exceeding the slot
// budget is truncated or rejected per policy.
func ApplyTraining(c *character.Character, cat *catalog.Catalog, selected []string, policy OverLimitPolicy) *character.Character {
	class, ok := cat.ClassByID(c.ClassID)
	if !ok {
		return c
	}

	intMod := character.Modifier(CurrentScores(c).Intelligence)
	slots := TrainingSlots(class.BaseSkillSlots, intMod)

	auto := make(map[string]bool)
	kept := make([]character.TrainedSkill, 0, len(c.Skills))
	for _, s := range c.Skills {
		if s.Source != character.SourceChoice {
			auto[s.Name] = true
			kept = append(kept, s)
		}
	}

	eligible := make([]character.TrainedSkill, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		def, known := cat.SkillByName(name)
		if !known || auto[name] || seen[name] {
			continue
		}
		seen[name] = true
		eligible = append(eligible, character.TrainedSkill{
			Name:    name,
			Ability: character.Ability(def.Ability),
			Rank:    character.Trained,
			Source:  character.SourceChoice,
		})
	}

	if len(eligible) > slots {
		if policy == OverLimitReject {
			return c
		}
		eligible = eligible[:slots]
	}

	out := c.Clone()
	out.Skills = append(kept, eligible...)
	return out
}
