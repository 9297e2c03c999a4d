package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/soren-hale/charforge/internal/game/rules"
)

func TestToggleSelection_SingleSelectReplaces(t *testing.T) {
	out := rules.ToggleSelection([]string{"fire"}, "frost", 1)
	assert.Equal(t, []string{"frost"}, out)
}

func TestToggleSelection_SingleSelectTogglesOff(t *testing.T) {
	out := rules.ToggleSelection([]string{"fire"}, "fire", 1)
	assert.Empty(t, out)
}

func TestToggleSelection_MultiAdds(t *testing.T) {
	out := rules.ToggleSelection([]string{"fire"}, "frost", 3)
	assert.Equal(t, []string{"fire", "frost"}, out)
}

func TestToggleSelection_MultiRemovesPreservingOrder(t *testing.T) {
	out := rules.ToggleSelection([]string{"fire", "frost", "storm"}, "frost", 3)
	assert.Equal(t, []string{"fire", "storm"}, out)
}

func TestToggleSelection_OverCapIsNoOp(t *testing.T) {
	current := []string{"fire", "frost", "storm"}
	out := rules.ToggleSelection(current, "stone", 3)
	assert.Equal(t, current, out)

	// Repeated over-limit calls stay no-ops.
	out = rules.ToggleSelection(out, "stone", 3)
	assert.Equal(t, current, out)
}

func TestToggleSelection_InputNotMutated(t *testing.T) {
	current := []string{"fire", "frost"}
	_ = rules.ToggleSelection(current, "storm", 3)
	_ = rules.ToggleSelection(current, "fire", 3)
	assert.Equal(t, []string{"fire", "frost"}, current)
}

// Property: toggling the same candidate twice restores the original set.
func TestToggleSelection_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ids := []string{"a", "b", "c", "d", "e"}
		max := rapid.IntRange(1, 4).Draw(rt, "max")
		size := rapid.IntRange(0, max).Draw(rt, "size")
		current := append([]string(nil), ids[:size]...)
		candidate := rapid.SampledFrom(ids).Draw(rt, "candidate")

		once := rules.ToggleSelection(current, candidate, max)
		twice := rules.ToggleSelection(once, candidate, max)

		if max == 1 {
			// Single-select replace-then-replace converges on the candidate
			// alone unless it started selected.
			if len(current) == 1 && current[0] == candidate {
				if len(twice) != 1 || twice[0] != candidate {
					rt.Fatalf("double toggle of selected single got %v", twice)
				}
			}
			return
		}
		if len(twice) != len(current) {
			rt.Fatalf("double toggle changed size: %v -> %v", current, twice)
		}
		for i := range current {
			if twice[i] != current[i] {
				rt.Fatalf("double toggle changed set: %v -> %v", current, twice)
			}
		}
	})
}

// Property: any toggle sequence keeps the set within the cap.
func TestToggleSelection_CardinalityInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ids := []string{"a", "b", "c", "d", "e", "f"}
		max := rapid.IntRange(1, 4).Draw(rt, "max")
		current := []string{}
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			current = rules.ToggleSelection(current, rapid.SampledFrom(ids).Draw(rt, "candidate"), max)
			if len(current) > max {
				rt.Fatalf("selection %v exceeds cap %d", current, max)
			}
		}
	})
}

func TestEligibleSkillChoice_ExcludesTrainedElsewhere(t *testing.T) {
	trained := []string{"athletics", "arcana"}
	assert.False(t, rules.EligibleSkillChoice("athletics", trained, ""))
	assert.True(t, rules.EligibleSkillChoice("stealth", trained, ""))
}

func TestEligibleSkillChoice_ExcludesOverlapSkill(t *testing.T) {
	// Background and class both grant occultism; the substitute pick must
	// not be occultism itself.
	assert.False(t, rules.EligibleSkillChoice("occultism", nil, "occultism"))
	assert.True(t, rules.EligibleSkillChoice("diplomacy", nil, "occultism"))
}

func TestEligibleSkillChoice_EmptyNameIneligible(t *testing.T) {
	assert.False(t, rules.EligibleSkillChoice("", nil, ""))
}
