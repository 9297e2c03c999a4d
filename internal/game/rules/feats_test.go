package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-hale/charforge/internal/game/character"
	"github.com/soren-hale/charforge/internal/game/rules"
)

func TestEligibleFeats_LevelGated(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)

	feats := rules.EligibleFeats(cat, c, "")
	ids := make([]string, 0, len(feats))
	for _, f := range feats {
		ids = append(ids, f.ID)
	}
	assert.Contains(t, ids, "reach-spell")
	assert.Contains(t, ids, "toughness")
	assert.NotContains(t, ids, "spell-penetration")
}

func TestEligibleFeats_CategoryFilterAndTaken(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(10)
	c.Feats = []character.CharacterFeat{{FeatID: "reach-spell", Level: 1, Category: "class"}}

	feats := rules.EligibleFeats(cat, c, "class")
	require.Len(t, feats, 1)
	assert.Equal(t, "spell-penetration", feats[0].ID)
}

func TestTakeFeat_Recorded(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(6)

	out := rules.TakeFeat(c, cat, "spell-penetration", 6)
	require.NotSame(t, c, out)
	require.Len(t, out.Feats, 1)
	assert.Equal(t, "spell-penetration", out.Feats[0].FeatID)
	assert.Equal(t, 6, out.Feats[0].Level)
	assert.Equal(t, "class", out.Feats[0].Category)
	assert.Empty(t, c.Feats)
}

func TestTakeFeat_BelowFeatLevelIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(6)
	assert.Same(t, c, rules.TakeFeat(c, cat, "spell-penetration", 5))
}

func TestTakeFeat_AboveCharacterLevelIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)
	assert.Same(t, c, rules.TakeFeat(c, cat, "toughness", 4))
}

func TestTakeFeat_UnknownFeatIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)
	assert.Same(t, c, rules.TakeFeat(c, cat, "quicken-spell", 3))
}

func TestTakeFeat_DuplicateIsIdentity(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)
	out := rules.TakeFeat(c, cat, "reach-spell", 1)
	require.NotSame(t, c, out)
	assert.Same(t, out, rules.TakeFeat(out, cat, "reach-spell", 2))
}

func TestRemoveFeat(t *testing.T) {
	cat := testCatalog()
	c := makeWizard(3)
	c = rules.TakeFeat(c, cat, "reach-spell", 1)
	c = rules.TakeFeat(c, cat, "toughness", 2)

	out := rules.RemoveFeat(c, "reach-spell")
	require.NotSame(t, c, out)
	require.Len(t, out.Feats, 1)
	assert.Equal(t, "toughness", out.Feats[0].FeatID)
	assert.Len(t, c.Feats, 2)
}

func TestRemoveFeat_NotTakenIsIdentity(t *testing.T) {
	c := makeWizard(3)
	assert.Same(t, c, rules.RemoveFeat(c, "reach-spell"))
}
