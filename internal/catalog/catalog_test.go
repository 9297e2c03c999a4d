package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-hale/charforge/internal/catalog"
)

func registryFixture() *catalog.Catalog {
	cat := catalog.New()
	cat.RegisterClass(&catalog.Class{ID: "wizard", Name: "Wizard"})
	cat.RegisterClass(&catalog.Class{ID: "bard", Name: "Bard"})
	cat.RegisterSpell(&catalog.Spell{ID: "heal", Name: "Heal", Rank: 1})
	cat.RegisterFeat(&catalog.Feat{ID: "fleet", Name: "Fleet", Category: catalog.FeatGeneral})
	cat.RegisterSkill(&catalog.SkillDefinition{Name: "arcana", Ability: "intelligence"})
	cat.RegisterSpecialization(&catalog.SpecializationType{
		ID: "muse", ClassID: "bard", Name: "Muse", MaxSelections: 1,
	})
	return cat
}

func TestCatalog_LookupHits(t *testing.T) {
	cat := registryFixture()

	c, ok := cat.ClassByID("wizard")
	require.True(t, ok)
	assert.Equal(t, "Wizard", c.Name)

	s, ok := cat.SpellByID("heal")
	require.True(t, ok)
	assert.Equal(t, 1, s.Rank)

	specs := cat.SpecializationsForClass("bard")
	require.Len(t, specs, 1)
	assert.Equal(t, "muse", specs[0].ID)
}

func TestCatalog_LookupMissesReturnFalse(t *testing.T) {
	cat := registryFixture()

	_, ok := cat.ClassByID("fighter")
	assert.False(t, ok)
	_, ok = cat.SpellByID("wish")
	assert.False(t, ok)
	_, ok = cat.FeatByID("nope")
	assert.False(t, ok)
	_, ok = cat.SkillByName("basketweaving")
	assert.False(t, ok)
	assert.Empty(t, cat.SpecializationsForClass("fighter"))
}

func TestCatalog_RegistrationOrderPreserved(t *testing.T) {
	cat := registryFixture()
	classes := cat.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, "wizard", classes[0].ID)
	assert.Equal(t, "bard", classes[1].ID)
}

func TestCatalog_ReRegistrationLastWins(t *testing.T) {
	cat := registryFixture()
	cat.RegisterClass(&catalog.Class{ID: "wizard", Name: "Universalist Wizard"})

	c, ok := cat.ClassByID("wizard")
	require.True(t, ok)
	assert.Equal(t, "Universalist Wizard", c.Name)
	assert.Len(t, cat.Classes(), 2)
}

func TestValidFeatCategory(t *testing.T) {
	for _, cat2 := range []string{
		catalog.FeatAncestry, catalog.FeatClass, catalog.FeatGeneral, catalog.FeatSkill, catalog.FeatArchetype,
	} {
		assert.True(t, catalog.ValidFeatCategory(cat2))
	}
	assert.False(t, catalog.ValidFeatCategory("mythic"))
}
