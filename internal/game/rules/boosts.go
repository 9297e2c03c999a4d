// Package rules implements the character rules-resolution engine: pure
// functions over a Character snapshot and the content catalog. Every resolver
// returns a new snapshot and never mutates its input; defensive failures
// degrade to identity (the input is returned unchanged) rather than erroring,
// so a stale or double-submitted UI action can never corrupt a character.
package rules

import (
	"github.com/soren-hale/charforge/internal/game/character"
)

// ExclusionMode selects the gradual-boost repetition rule. The upstream
// ruleset material describes the constraint both ways, so both are kept as
// explicit configuration rather than silently picking one.
type ExclusionMode string

const (
	// ExclusionBlock forbids boosting the same ability twice within one
	// four-level block (2-5, 7-10, 12-15, 17-20).
	ExclusionBlock ExclusionMode = "block"
	// ExclusionRolling forbids boosting an ability again until three other
	// distinct abilities have been boosted.
	ExclusionRolling ExclusionMode = "rolling"
)

// ValidExclusionMode reports whether mode is a recognised exclusion mode.
func ValidExclusionMode(mode ExclusionMode) bool {
	return mode == ExclusionBlock || mode == ExclusionRolling
}

// rollingWindow is the number of distinct other abilities that must be
// boosted before an ability may repeat under ExclusionRolling.
const rollingWindow = 3

// BoostConfig carries the rules-level configuration for the boost resolver.
type BoostConfig struct {
	GradualExclusion ExclusionMode
}

// softCap is the score at or above which a boost grants +1 instead of +2.
const softCap = 18

// RequiredBoosts returns the number of distinct abilities that must be
// selected at the given level-up event.
//
// Standard variant: four boosts at levels 5, 10, 15, and 20; none elsewhere.
// Gradual variant: one boost at each level 2-20 except the pause levels
// 6, 11, and 16, which grant none.
func RequiredBoosts(level int, gradual bool) int {
	if level < 2 || level > 20 {
		return 0
	}
	if gradual {
		if level%5 == 1 {
			return 0
		}
		return 1
	}
	if level%5 == 0 {
		return 4
	}
	return 0
}

// boostBlock returns the inclusive level range of the gradual-boost block
// containing level. Pause levels belong to the block they precede.
func boostBlock(level int) (lo, hi int) {
	b := (level - 1) / 5
	return 5*b + 2, 5*b + 5
}

// boostIncrement returns the score increase for one boost: +1 at or above
// the soft cap, +2 below it.
func boostIncrement(score int) int {
	if score >= softCap {
		return 1
	}
	return 2
}

// applyEvent applies one level-up event's boosts to scores. All increments
// are computed against the scores entering the event, so the order of picks
// within an event does not matter.
func applyEvent(scores character.AbilityScores, picks []character.Ability) character.AbilityScores {
	entering := scores
	for _, ab := range picks {
		scores = scores.WithScore(ab, scores.Score(ab)+boostIncrement(entering.Score(ab)))
	}
	return scores
}

// boostLevels returns the levels with recorded boosts in ascending order.
func boostLevels(c *character.Character) []int {
	levels := make([]int, 0, len(c.Boosts))
	for lvl := 2; lvl <= 20; lvl++ {
		if len(c.Boosts[lvl]) > 0 {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// CurrentScores derives the character's ability scores by replaying the full
// boost history, in level order, over the stored base scores.
func CurrentScores(c *character.Character) character.AbilityScores {
	return ScoresExcluding(c, 0)
}

// ScoresExcluding derives ability scores from the boost history with the
// given level's event left out. It is the basis for previewing an edit of an
// already-applied level-up: re-selecting the same abilities always reproduces
// the same final scores. An excluded level of 0 excludes nothing.
func ScoresExcluding(c *character.Character, level int) character.AbilityScores {
	scores := c.Abilities
	for _, lvl := range boostLevels(c) {
		if lvl == level {
			continue
		}
		scores = applyEvent(scores, c.Boosts[lvl])
	}
	return scores
}

// PreviewBoosts computes the scores that would result from selecting picks at
// the given level, replacing any boosts previously applied at that level.
// The preview makes no validity judgement; pair it with ValidBoostSelection.
func PreviewBoosts(c *character.Character, level int, picks []character.Ability) character.AbilityScores {
	return applyEvent(ScoresExcluding(c, level), picks)
}

// EligibleBoostAbilities returns the abilities selectable at the given level.
// Under the standard variant every ability is eligible (distinctness within
// the event is enforced at apply time). Under the gradual variant the active
// exclusion mode removes recently boosted abilities.
func EligibleBoostAbilities(c *character.Character, level int, cfg BoostConfig) []character.Ability {
	if RequiredBoosts(level, c.Variants.GradualBoosts) == 0 {
		return nil
	}
	if !c.Variants.GradualBoosts {
		return append([]character.Ability(nil), character.Abilities...)
	}
	excluded := gradualExclusions(c, level, cfg)
	eligible := make([]character.Ability, 0, len(character.Abilities))
	for _, ab := range character.Abilities {
		if !excluded[ab] {
			eligible = append(eligible, ab)
		}
	}
	return eligible
}

// gradualExclusions returns the abilities the exclusion mode forbids at level.
// Only events at other levels count; the level being edited is ignored so
// that re-editing an event never excludes its own previous pick.
func gradualExclusions(c *character.Character, level int, cfg BoostConfig) map[character.Ability]bool {
	excluded := make(map[character.Ability]bool)
	switch cfg.GradualExclusion {
	case ExclusionRolling:
		// The window extends both ways from the edited level: backward so a
		// pick cannot repeat a recent boost, and forward so re-editing an
		// early event cannot retroactively invalidate a later one.
		distinct := 0
		for lvl := level - 1; lvl >= 2 && distinct < rollingWindow; lvl-- {
			for _, ab := range c.Boosts[lvl] {
				if !excluded[ab] {
					excluded[ab] = true
					distinct++
				}
			}
		}
		distinct = 0
		for lvl := level + 1; lvl <= 20 && distinct < rollingWindow; lvl++ {
			for _, ab := range c.Boosts[lvl] {
				if !excluded[ab] {
					excluded[ab] = true
					distinct++
				}
			}
		}
	default:
		// Block-scoped exclusion is the default.
		lo, hi := boostBlock(level)
		for lvl := lo; lvl <= hi; lvl++ {
			if lvl == level {
				continue
			}
			for _, ab := range c.Boosts[lvl] {
				excluded[ab] = true
			}
		}
	}
	return excluded
}

// ValidBoostSelection reports whether picks is a complete, legal selection
// for the level-up event at the given level.
func ValidBoostSelection(c *character.Character, level int, picks []character.Ability, cfg BoostConfig) bool {
	required := RequiredBoosts(level, c.Variants.GradualBoosts)
	if required == 0 || len(picks) != required {
		return false
	}
	seen := make(map[character.Ability]bool, len(picks))
	for _, ab := range picks {
		if !character.ValidAbility(ab) || seen[ab] {
			return false
		}
		seen[ab] = true
	}
	if c.Variants.GradualBoosts {
		excluded := gradualExclusions(c, level, cfg)
		for _, ab := range picks {
			if excluded[ab] {
				return false
			}
		}
	}
	return true
}

// ApplyBoosts commits picks as the level's boost event, replacing whatever
// was previously applied at that level, and returns the new snapshot.
// An invalid selection returns the input unchanged.
func ApplyBoosts(c *character.Character, level int, picks []character.Ability, cfg BoostConfig) *character.Character {
	if !ValidBoostSelection(c, level, picks, cfg) {
		return c
	}
	out := c.Clone()
	out.Boosts[level] = append([]character.Ability(nil), picks...)
	return out
}

// RemoveBoosts clears the boost event at the given level, if any, and
// returns the new snapshot. A level with no recorded boosts is identity.
func RemoveBoosts(c *character.Character, level int) *character.Character {
	if len(c.Boosts[level]) == 0 {
		return c
	}
	out := c.Clone()
	delete(out.Boosts, level)
	return out
}
