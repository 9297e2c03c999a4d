package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
	"github.com/soren-hale/charforge/internal/game/rules"
)

func TestTrainingSlots_PositiveModifierAdds(t *testing.T) {
	assert.Equal(t, 3, rules.TrainingSlots(2, 1))
}

func TestTrainingSlots_NegativeModifierIgnored(t *testing.T) {
	// A negative intelligence modifier never reduces slots below the base.
	assert.Equal(t, 2, rules.TrainingSlots(2, -2))
	assert.Equal(t, 2, rules.TrainingSlots(2, 0))
}

func TestTrainableSkills_ExcludesAllAutomaticSources(t *testing.T) {
	all := []*catalog.SkillDefinition{
		{Name: "arcana"}, {Name: "athletics"}, {Name: "stealth"}, {Name: "survival"},
	}
	out := rules.TrainableSkills(all, []string{"arcana"}, []string{"athletics"}, []string{"survival"})
	assert.Equal(t, []string{"stealth"}, out)
}

func TestTrainableSkills_NeverIntersectsCovered(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := []string{"arcana", "athletics", "stealth", "survival", "diplomacy", "occultism"}
		all := make([]*catalog.SkillDefinition, len(names))
		for i, n := range names {
			all[i] = &catalog.SkillDefinition{Name: n}
		}
		autoN := rapid.IntRange(0, 3).Draw(rt, "auto")
		bgN := rapid.IntRange(0, 2).Draw(rt, "bg")
		auto := names[:autoN]
		background := names[autoN : autoN+bgN]

		covered := make(map[string]bool)
		for _, n := range auto {
			covered[n] = true
		}
		for _, n := range background {
			covered[n] = true
		}
		for _, n := range rules.TrainableSkills(all, auto, background, nil) {
			if covered[n] {
				rt.Fatalf("trainable skill %q is already covered", n)
			}
		}
	})
}

// Wizard with base 2 slots and Intelligence 12 (+1 modifier): three slots.
func trainingWizard() *character.Character {
	c := makeWizard(1)
	c.Abilities.Intelligence = 12
	return c
}

func TestApplyTraining_WithinBudget(t *testing.T) {
	cat := testCatalog()
	c := trainingWizard()

	out := rules.ApplyTraining(c, cat, []string{"stealth", "diplomacy", "survival"}, rules.OverLimitTruncate)
	require.NotSame(t, c, out)

	assert.Equal(t, character.Trained, out.SkillRank("stealth"))
	assert.Equal(t, character.Trained, out.SkillRank("diplomacy"))
	assert.Equal(t, character.Trained, out.SkillRank("survival"))
	// Class-granted arcana survives untouched.
	assert.Equal(t, character.Trained, out.SkillRank("arcana"))
}

func TestApplyTraining_OverLimitTruncates(t *testing.T) {
	cat := testCatalog()
	c := trainingWizard()

	// Four picks against three slots: the first three in selection order win.
	out := rules.ApplyTraining(c, cat, []string{"stealth", "diplomacy", "survival", "athletics"}, rules.OverLimitTruncate)
	assert.Equal(t, character.Trained, out.SkillRank("stealth"))
	assert.Equal(t, character.Trained, out.SkillRank("diplomacy"))
	assert.Equal(t, character.Trained, out.SkillRank("survival"))
	assert.Equal(t, character.Untrained, out.SkillRank("athletics"))
}

func TestApplyTraining_OverLimitRejects(t *testing.T) {
	cat := testCatalog()
	c := trainingWizard()

	out := rules.ApplyTraining(c, cat, []string{"stealth", "diplomacy", "survival", "athletics"}, rules.OverLimitReject)
	assert.Same(t, c, out)
}

func TestApplyTraining_SkipsAutoTrainedAndUnknown(t *testing.T) {
	cat := testCatalog()
	c := trainingWizard()

	// arcana is class-granted and "lore-of-nowhere" is not in the catalog;
	// both are skipped without consuming slots.
	out := rules.ApplyTraining(c, cat, []string{"arcana", "lore-of-nowhere", "stealth"}, rules.OverLimitTruncate)
	assert.Equal(t, character.Trained, out.SkillRank("stealth"))
	chosen := 0
	for _, s := range out.Skills {
		if s.Source == character.SourceChoice {
			chosen++
		}
	}
	assert.Equal(t, 1, chosen)
}

func TestApplyTraining_ReplacesPreviousChoices(t *testing.T) {
	cat := testCatalog()
	c := trainingWizard()

	first := rules.ApplyTraining(c, cat, []string{"stealth"}, rules.OverLimitTruncate)
	second := rules.ApplyTraining(first, cat, []string{"diplomacy"}, rules.OverLimitTruncate)

	// Deselected skills revert to untrained.
	assert.Equal(t, character.Untrained, second.SkillRank("stealth"))
	assert.Equal(t, character.Trained, second.SkillRank("diplomacy"))
}

func TestApplyTraining_UnknownClassIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := trainingWizard()
	c.ClassID = "no-such-class"
	assert.Same(t, c, rules.ApplyTraining(c, cat, []string{"stealth"}, rules.OverLimitTruncate))
}

// Property: the final trained set never exceeds the slot budget plus the
// automatic grants.
func TestApplyTraining_SlotBudgetInvariant(t *testing.T) {
	cat := testCatalog()
	names := []string{"stealth", "diplomacy", "survival", "athletics", "occultism", "performance"}

	rapid.Check(t, func(rt *rapid.T) {
		c := makeWizard(1)
		c.Abilities.Intelligence = rapid.IntRange(6, 18).Draw(rt, "int")
		n := rapid.IntRange(0, len(names)).Draw(rt, "picks")

		out := rules.ApplyTraining(c, cat, names[:n], rules.OverLimitTruncate)

		intMod := character.Modifier(rules.CurrentScores(c).Intelligence)
		budget := rules.TrainingSlots(2, intMod) + 1 // +1 class-granted arcana
		if len(out.Skills) > budget {
			rt.Fatalf("trained %d skills, budget %d", len(out.Skills), budget)
		}
	})
}
