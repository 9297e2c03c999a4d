package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/soren-hale/charforge/internal/game/rules"
)

func TestInitializeSpellbook_Idempotent(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)

	once := rules.InitializeSpellbook(c, cat)
	require.NotSame(t, c, once)
	require.NotNil(t, once.Spellbooks["wizard-spellbook"])

	twice := rules.InitializeSpellbook(once, cat)
	assert.Same(t, once, twice)
}

func TestInitializeSpellbook_NoFeatureIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3) // bard has bonus_per_rank, not spellbook
	assert.Same(t, c, rules.InitializeSpellbook(c, cat))
}

func TestAddSpell_Accepted(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)

	out := rules.AddSpell(c, cat, "invisibility")
	require.NotSame(t, c, out)
	assert.Equal(t, []string{"invisibility"}, out.Spellbooks["wizard-spellbook"].Spells)
}

func TestAddSpell_CantripRejected(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)

	// Rank 0 spells are excluded from the spellbook feature.
	out := rules.AddSpell(c, cat, "shield")
	assert.Same(t, c, out)
}

func TestAddSpell_TraditionMismatchRejected(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)

	out := rules.AddSpell(c, cat, "heal") // divine/primal, not arcane
	assert.Same(t, c, out)
}

func TestAddSpell_RitualRejected(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)

	out := rules.AddSpell(c, cat, "animal-messenger")
	assert.Same(t, c, out)
}

func TestAddSpell_DuplicateRejected(t *testing.T) {
	cat := testCatalog()
	c := rules.AddSpell(rules.InitializeSpellbook(makeWizard(3), cat), cat, "invisibility")

	out := rules.AddSpell(c, cat, "invisibility")
	assert.Same(t, c, out)
}

func TestAddSpell_UnknownIDRejected(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)
	assert.Same(t, c, rules.AddSpell(c, cat, "no-such-spell"))
}

func TestRemoveSpell_ClearsDailyPreparation(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)
	c = rules.AddSpell(c, cat, "invisibility")
	c = rules.SetDailyPreparation(c, cat, "invisibility")
	require.Equal(t, "invisibility", c.Spellbooks["wizard-spellbook"].DailyPreparation)

	out := rules.RemoveSpell(c, cat, "invisibility")
	require.NotSame(t, c, out)
	book := out.Spellbooks["wizard-spellbook"]
	assert.Empty(t, book.Spells)
	assert.Empty(t, book.DailyPreparation)
}

func TestRemoveSpell_OtherSpellKeepsPreparation(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)
	c = rules.AddSpell(c, cat, "invisibility")
	c = rules.AddSpell(c, cat, "mystic-armor")
	c = rules.SetDailyPreparation(c, cat, "invisibility")

	out := rules.RemoveSpell(c, cat, "mystic-armor")
	assert.Equal(t, "invisibility", out.Spellbooks["wizard-spellbook"].DailyPreparation)
}

func TestRemoveSpell_UnlearnedIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)
	assert.Same(t, c, rules.RemoveSpell(c, cat, "invisibility"))
}

func TestSetDailyPreparation_RequiresMembership(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)

	out := rules.SetDailyPreparation(c, cat, "invisibility")
	assert.Same(t, c, out)
}

func TestSetDailyPreparation_Clear(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat)
	c = rules.AddSpell(c, cat, "invisibility")
	c = rules.SetDailyPreparation(c, cat, "invisibility")

	out := rules.SetDailyPreparation(c, cat, "")
	assert.Empty(t, out.Spellbooks["wizard-spellbook"].DailyPreparation)
}

func TestEligibleSpellbookSpells_FiltersRankTraditionRitual(t *testing.T) {
	cat := testCatalog()
	c := rules.InitializeSpellbook(makeWizard(3), cat) // max castable rank 2

	var ids []string
	for _, s := range rules.EligibleSpellbookSpells(cat, c) {
		ids = append(ids, s.ID)
	}
	// shield is a cantrip, heal is off-tradition, animal-messenger is a
	// ritual, fireball is rank 3 and out of reach at level 3.
	assert.ElementsMatch(t, []string{"mystic-armor", "invisibility"}, ids)
}

func TestEligibleSpellbookSpells_ExcludesLearned(t *testing.T) {
	cat := testCatalog()
	c := rules.AddSpell(rules.InitializeSpellbook(makeWizard(3), cat), cat, "invisibility")

	for _, s := range rules.EligibleSpellbookSpells(cat, c) {
		assert.NotEqual(t, "invisibility", s.ID)
	}
}

// Property: after any sequence of add/remove/prepare operations the daily
// preparation is empty or a member of the spellbook.
func TestSpellbook_MembershipInvariant(t *testing.T) {
	cat := testCatalog()
	spellIDs := []string{"shield", "mystic-armor", "invisibility", "heal", "fireball", "no-such-spell"}

	rapid.Check(t, func(rt *rapid.T) {
		c := rules.InitializeSpellbook(makeWizard(5), cat)
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.SampledFrom(spellIDs).Draw(rt, "spell")
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				c = rules.AddSpell(c, cat, id)
			case 1:
				c = rules.RemoveSpell(c, cat, id)
			case 2:
				c = rules.SetDailyPreparation(c, cat, id)
			}

			book := c.Spellbooks["wizard-spellbook"]
			if book.DailyPreparation != "" && !book.Contains(book.DailyPreparation) {
				rt.Fatalf("daily preparation %q not in spellbook %v", book.DailyPreparation, book.Spells)
			}
		}
	})
}
