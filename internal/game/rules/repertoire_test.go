package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-hale/charforge/internal/game/rules"
)

func TestEligibleBonusSpells_FiltersByRankAndTradition(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3) // max castable rank 2

	var rank1 []string
	for _, s := range rules.EligibleBonusSpells(cat, c, 1) {
		rank1 = append(rank1, s.ID)
	}
	assert.Equal(t, []string{"phantom-pain"}, rank1)

	var rank2 []string
	for _, s := range rules.EligibleBonusSpells(cat, c, 2) {
		rank2 = append(rank2, s.ID)
	}
	assert.Equal(t, []string{"invisibility"}, rank2)
}

func TestEligibleBonusSpells_RankAboveReachEmpty(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)
	assert.Empty(t, rules.EligibleBonusSpells(cat, c, 3))
	assert.Empty(t, rules.EligibleBonusSpells(cat, c, 0))
}

func TestEligibleBonusSpells_WrongFeatureEmpty(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)
	assert.Empty(t, rules.EligibleBonusSpells(cat, c, 1))
}

func TestSetExtraSpell_SetAndReplace(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)

	out := rules.SetExtraSpell(c, cat, 2, "invisibility")
	require.NotSame(t, c, out)
	assert.Equal(t, "invisibility", out.Spellbooks["esoteric-repertoire"].ExtraSpells[2])

	// Replacing the slot keeps exactly one spell per rank.
	again := rules.SetExtraSpell(out, cat, 1, "phantom-pain")
	assert.Equal(t, "invisibility", again.Spellbooks["esoteric-repertoire"].ExtraSpells[2])
	assert.Equal(t, "phantom-pain", again.Spellbooks["esoteric-repertoire"].ExtraSpells[1])
}

func TestSetExtraSpell_Clear(t *testing.T) {
	cat := testCatalog()
	c := rules.SetExtraSpell(makeBard(3), cat, 2, "invisibility")

	out := rules.SetExtraSpell(c, cat, 2, "")
	require.NotSame(t, c, out)
	_, exists := out.Spellbooks["esoteric-repertoire"].ExtraSpells[2]
	assert.False(t, exists)
}

func TestSetExtraSpell_OutOfRangeRankIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)
	assert.Same(t, c, rules.SetExtraSpell(c, cat, 3, "fireball"))
	assert.Same(t, c, rules.SetExtraSpell(c, cat, 0, "phantom-pain"))
}

func TestSetExtraSpell_RankMismatchIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)
	// phantom-pain is rank 1, not 2.
	assert.Same(t, c, rules.SetExtraSpell(c, cat, 2, "phantom-pain"))
}

func TestSetExtraSpell_TraditionMismatchIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)
	assert.Same(t, c, rules.SetExtraSpell(c, cat, 1, "heal"))
}

func TestSetExtraSpell_ClearEmptySlotIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)
	assert.Same(t, c, rules.SetExtraSpell(c, cat, 1, ""))
}

func TestSetExtraSpell_InputUnchanged(t *testing.T) {
	cat := testCatalog()
	c := makeBard(3)
	_ = rules.SetExtraSpell(c, cat, 2, "invisibility")
	assert.Empty(t, c.Spellbooks)
}
