package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/soren-hale/charforge/internal/game/character"
	"github.com/soren-hale/charforge/internal/game/rules"
)

func makeCharacter(level int, gradual bool) *character.Character {
	return &character.Character{
		ID:        "test-char",
		Name:      "Testa",
		ClassID:   "wizard",
		Level:     level,
		Abilities: character.BaseScores(),
		Boosts:    make(map[int][]character.Ability),
		Variants:  character.VariantFlags{GradualBoosts: gradual},
	}
}

func blockCfg() rules.BoostConfig {
	return rules.BoostConfig{GradualExclusion: rules.ExclusionBlock}
}

func TestRequiredBoosts_StandardVariant(t *testing.T) {
	for lvl := 2; lvl <= 20; lvl++ {
		want := 0
		if lvl%5 == 0 {
			want = 4
		}
		assert.Equal(t, want, rules.RequiredBoosts(lvl, false), "level %d", lvl)
	}
}

func TestRequiredBoosts_GradualPauseLevels(t *testing.T) {
	// Pause levels 6, 11, 16 grant zero boost slots under the gradual variant.
	for _, lvl := range []int{6, 11, 16} {
		assert.Equal(t, 0, rules.RequiredBoosts(lvl, true), "level %d", lvl)
	}
	for _, lvl := range []int{2, 5, 7, 10, 12, 15, 17, 20} {
		assert.Equal(t, 1, rules.RequiredBoosts(lvl, true), "level %d", lvl)
	}
}

func TestRequiredBoosts_OutOfRange(t *testing.T) {
	assert.Equal(t, 0, rules.RequiredBoosts(1, false))
	assert.Equal(t, 0, rules.RequiredBoosts(1, true))
	assert.Equal(t, 0, rules.RequiredBoosts(21, true))
}

func TestApplyBoosts_PlusTwoBelowSoftCap(t *testing.T) {
	c := makeCharacter(5, false)
	c.Abilities.Strength = 17

	picks := []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}
	out := rules.ApplyBoosts(c, 5, picks, blockCfg())
	require.NotSame(t, c, out)

	scores := rules.CurrentScores(out)
	assert.Equal(t, 19, scores.Strength) // 17 + 2
	assert.Equal(t, 12, scores.Dexterity)
}

func TestApplyBoosts_PlusOneAtSoftCap(t *testing.T) {
	c := makeCharacter(10, false)
	c.Abilities.Strength = 17
	c.Boosts[5] = []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}

	// Strength entered level 10 at 19; a second boost grants only +1.
	picks := []character.Ability{character.Strength, character.Intelligence, character.Charisma, character.Dexterity}
	out := rules.ApplyBoosts(c, 10, picks, blockCfg())

	scores := rules.CurrentScores(out)
	assert.Equal(t, 20, scores.Strength)
}

func TestApplyBoosts_WrongCountIsIdentity(t *testing.T) {
	c := makeCharacter(5, false)
	out := rules.ApplyBoosts(c, 5, []character.Ability{character.Strength}, blockCfg())
	assert.Same(t, c, out)
}

func TestApplyBoosts_DuplicateAbilityIsIdentity(t *testing.T) {
	c := makeCharacter(5, false)
	picks := []character.Ability{character.Strength, character.Strength, character.Dexterity, character.Wisdom}
	out := rules.ApplyBoosts(c, 5, picks, blockCfg())
	assert.Same(t, c, out)
}

func TestApplyBoosts_NoSlotsAtLevelIsIdentity(t *testing.T) {
	c := makeCharacter(5, false)
	picks := []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}
	out := rules.ApplyBoosts(c, 4, picks, blockCfg())
	assert.Same(t, c, out)
}

func TestApplyBoosts_InputUnchanged(t *testing.T) {
	c := makeCharacter(5, false)
	picks := []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}
	_ = rules.ApplyBoosts(c, 5, picks, blockCfg())
	assert.Empty(t, c.Boosts[5])
	assert.Equal(t, character.BaseScores(), c.Abilities)
}

func TestApplyBoosts_GradualBlockExclusion(t *testing.T) {
	c := makeCharacter(5, true)
	c.Boosts[2] = []character.Ability{character.Strength}
	c.Boosts[3] = []character.Ability{character.Dexterity}

	// Strength was boosted at level 2, in the same 2-5 block.
	out := rules.ApplyBoosts(c, 4, []character.Ability{character.Strength}, blockCfg())
	assert.Same(t, c, out)

	// A fresh ability is fine.
	out = rules.ApplyBoosts(c, 4, []character.Ability{character.Wisdom}, blockCfg())
	require.NotSame(t, c, out)
	assert.Equal(t, []character.Ability{character.Wisdom}, out.Boosts[4])
}

func TestApplyBoosts_GradualNewBlockResets(t *testing.T) {
	c := makeCharacter(7, true)
	c.Boosts[2] = []character.Ability{character.Strength}
	c.Boosts[3] = []character.Ability{character.Dexterity}
	c.Boosts[4] = []character.Ability{character.Constitution}
	c.Boosts[5] = []character.Ability{character.Wisdom}

	// Level 7 opens the 7-10 block; Strength is allowed again.
	out := rules.ApplyBoosts(c, 7, []character.Ability{character.Strength}, blockCfg())
	require.NotSame(t, c, out)
}

func TestApplyBoosts_GradualRollingExclusion(t *testing.T) {
	cfg := rules.BoostConfig{GradualExclusion: rules.ExclusionRolling}
	c := makeCharacter(7, true)
	c.Boosts[2] = []character.Ability{character.Strength}
	c.Boosts[3] = []character.Ability{character.Dexterity}
	c.Boosts[4] = []character.Ability{character.Constitution}
	c.Boosts[5] = []character.Ability{character.Wisdom}

	// The last three distinct boosts are Wisdom, Constitution, Dexterity.
	for _, ab := range []character.Ability{character.Wisdom, character.Constitution, character.Dexterity} {
		out := rules.ApplyBoosts(c, 7, []character.Ability{ab}, cfg)
		assert.Same(t, c, out, "%s should be excluded", ab)
	}

	// Strength has rolled out of the window.
	out := rules.ApplyBoosts(c, 7, []character.Ability{character.Strength}, cfg)
	require.NotSame(t, c, out)
}

func TestApplyBoosts_GradualRollingExcludesLaterLevels(t *testing.T) {
	cfg := rules.BoostConfig{GradualExclusion: rules.ExclusionRolling}
	c := makeCharacter(5, true)
	c.Boosts[3] = []character.Ability{character.Strength}
	c.Boosts[4] = []character.Ability{character.Dexterity}
	c.Boosts[5] = []character.Ability{character.Constitution}

	// Editing the empty level 2 slot: the boosts just above sit inside the
	// window, so repeating any of them would invalidate the later event.
	for _, ab := range []character.Ability{character.Strength, character.Dexterity, character.Constitution} {
		out := rules.ApplyBoosts(c, 2, []character.Ability{ab}, cfg)
		assert.Same(t, c, out, "%s should be excluded", ab)
	}

	out := rules.ApplyBoosts(c, 2, []character.Ability{character.Wisdom}, cfg)
	require.NotSame(t, c, out)
	assert.Equal(t, []character.Ability{character.Wisdom}, out.Boosts[2])
}

func TestEligibleBoostAbilities_RollingWindowBothDirections(t *testing.T) {
	cfg := rules.BoostConfig{GradualExclusion: rules.ExclusionRolling}
	c := makeCharacter(5, true)
	c.Boosts[2] = []character.Ability{character.Strength}
	c.Boosts[4] = []character.Ability{character.Dexterity}

	eligible := rules.EligibleBoostAbilities(c, 3, cfg)
	assert.NotContains(t, eligible, character.Strength)
	assert.NotContains(t, eligible, character.Dexterity)
	assert.Contains(t, eligible, character.Constitution)
}

func TestEligibleBoostAbilities_GradualExcludesBlock(t *testing.T) {
	c := makeCharacter(5, true)
	c.Boosts[2] = []character.Ability{character.Strength}

	eligible := rules.EligibleBoostAbilities(c, 3, blockCfg())
	assert.NotContains(t, eligible, character.Strength)
	assert.Len(t, eligible, 5)
}

func TestEligibleBoostAbilities_PauseLevelEmpty(t *testing.T) {
	c := makeCharacter(6, true)
	assert.Empty(t, rules.EligibleBoostAbilities(c, 6, blockCfg()))
}

func TestEligibleBoostAbilities_EditingOwnLevelNotSelfExcluding(t *testing.T) {
	c := makeCharacter(3, true)
	c.Boosts[3] = []character.Ability{character.Strength}

	// Re-editing level 3 must still offer Strength.
	eligible := rules.EligibleBoostAbilities(c, 3, blockCfg())
	assert.Contains(t, eligible, character.Strength)
}

func TestRemoveBoosts(t *testing.T) {
	c := makeCharacter(5, false)
	c.Boosts[5] = []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}

	out := rules.RemoveBoosts(c, 5)
	require.NotSame(t, c, out)
	assert.Empty(t, out.Boosts[5])
	assert.Len(t, c.Boosts[5], 4)

	assert.Same(t, out, rules.RemoveBoosts(out, 5))
}

// Property: a selected ability's preview score exceeds its current score by
// exactly 1 or 2, with 1 iff the current score is at or above 18; unselected
// abilities never change.
func TestPreviewBoosts_Monotonicity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := makeCharacter(5, false)
		for _, ab := range character.Abilities {
			c.Abilities = c.Abilities.WithScore(ab, rapid.IntRange(8, 22).Draw(rt, string(ab)))
		}
		picks := rapid.SampledFrom([][]character.Ability{
			{character.Strength, character.Dexterity, character.Constitution, character.Wisdom},
			{character.Intelligence, character.Charisma, character.Strength, character.Wisdom},
			{character.Dexterity, character.Intelligence, character.Wisdom, character.Charisma},
		}).Draw(rt, "picks")

		before := rules.CurrentScores(c)
		after := rules.PreviewBoosts(c, 5, picks)

		picked := make(map[character.Ability]bool)
		for _, ab := range picks {
			picked[ab] = true
		}
		for _, ab := range character.Abilities {
			delta := after.Score(ab) - before.Score(ab)
			if !picked[ab] {
				if delta != 0 {
					rt.Fatalf("unselected %s changed by %d", ab, delta)
				}
				continue
			}
			want := 2
			if before.Score(ab) >= 18 {
				want = 1
			}
			if delta != want {
				rt.Fatalf("%s at %d changed by %d, want %d", ab, before.Score(ab), delta, want)
			}
		}
	})
}

// Property: removing a level's boosts and reapplying the same set reproduces
// the original scores exactly.
func TestApplyBoosts_Reversibility(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := makeCharacter(10, false)
		for _, ab := range character.Abilities {
			c.Abilities = c.Abilities.WithScore(ab, rapid.IntRange(10, 20).Draw(rt, string(ab)))
		}
		picks := []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}

		applied := rules.ApplyBoosts(c, 5, picks, blockCfg())
		original := rules.CurrentScores(applied)

		removed := rules.RemoveBoosts(applied, 5)
		reapplied := rules.ApplyBoosts(removed, 5, picks, blockCfg())

		if got := rules.CurrentScores(reapplied); got != original {
			rt.Fatalf("reapplied scores %+v != original %+v", got, original)
		}
	})
}

// Property: re-applying the same selection at the same level is idempotent.
func TestApplyBoosts_RepeatedEditIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := makeCharacter(5, false)
		c.Abilities.Strength = rapid.IntRange(10, 20).Draw(rt, "str")
		picks := []character.Ability{character.Strength, character.Dexterity, character.Constitution, character.Wisdom}

		once := rules.ApplyBoosts(c, 5, picks, blockCfg())
		twice := rules.ApplyBoosts(once, 5, picks, blockCfg())

		if rules.CurrentScores(once) != rules.CurrentScores(twice) {
			rt.Fatalf("repeated edit changed scores: %+v vs %+v",
				rules.CurrentScores(once), rules.CurrentScores(twice))
		}
	})
}
