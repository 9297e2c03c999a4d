package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/rules"
	"github.com/soren-hale/charforge/internal/scripting"
)

func specCatalog() *catalog.Catalog {
	cat := testCatalog()
	cat.RegisterSpecialization(&catalog.SpecializationType{
		ID:            "arcane-school",
		ClassID:       "wizard",
		Name:          "Arcane School",
		Level:         1,
		MaxSelections: 1,
		Options: []*catalog.SpecializationOption{
			{ID: "school-of-battle", Name: "School of Battle Magic"},
			{ID: "school-of-mind", Name: "School of the Boundary", MinLevel: 4},
		},
	})
	cat.RegisterSpecialization(&catalog.SpecializationType{
		ID:            "arcane-thesis",
		ClassID:       "wizard",
		Name:          "Arcane Thesis",
		Level:         1,
		MaxSelections: 3,
		Options: []*catalog.SpecializationOption{
			{ID: "improved-familiar", Name: "Improved Familiar Attunement"},
			{ID: "metamagic", Name: "Metamagical Experimentation"},
			{ID: "spell-blending", Name: "Spell Blending"},
			{ID: "staff-nexus", Name: "Staff Nexus"},
		},
	})
	cat.RegisterSpecialization(&catalog.SpecializationType{
		ID:            "secondary-track",
		ClassID:       "wizard",
		Name:          "Secondary School Focus",
		Level:         8,
		MaxSelections: 1,
		Options: []*catalog.SpecializationOption{
			{ID: "second-school", Name: "Second School"},
		},
	})
	cat.RegisterSpecialization(&catalog.SpecializationType{
		ID:            "muse",
		ClassID:       "bard",
		Name:          "Muse",
		Level:         1,
		MaxSelections: 1,
		Options: []*catalog.SpecializationOption{
			{ID: "maestro", Name: "Maestro"},
			{ID: "polymath", Name: "Polymath"},
			// Scripted availability: only at even levels for test purposes.
			{ID: "enigma", Name: "Enigma", Availability: "level % 2 == 0"},
		},
	})
	return cat
}

func TestAvailableSpecializations_LevelGatesTypes(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)

	var ids []string
	for _, st := range eng.AvailableSpecializations("wizard", 1) {
		ids = append(ids, st.ID)
	}
	assert.ElementsMatch(t, []string{"arcane-school", "arcane-thesis"}, ids)

	ids = nil
	for _, st := range eng.AvailableSpecializations("wizard", 8) {
		ids = append(ids, st.ID)
	}
	assert.ElementsMatch(t, []string{"arcane-school", "arcane-thesis", "secondary-track"}, ids)
}

func TestAvailableSpecializations_OptionMinLevel(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)

	types := eng.AvailableSpecializations("wizard", 1)
	for _, st := range types {
		if st.ID == "arcane-school" {
			require.Len(t, st.Options, 1)
			assert.Equal(t, "school-of-battle", st.Options[0].ID)
		}
	}

	types = eng.AvailableSpecializations("wizard", 4)
	for _, st := range types {
		if st.ID == "arcane-school" {
			assert.Len(t, st.Options, 2)
		}
	}
}

func TestAvailableSpecializations_UnknownClassEmpty(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	assert.Empty(t, eng.AvailableSpecializations("no-such-class", 10))
}

func TestAvailableSpecializations_CatalogEntryNotMutated(t *testing.T) {
	cat := specCatalog()
	eng := rules.NewEligibility(cat, nil)

	_ = eng.AvailableSpecializations("wizard", 1)

	st, ok := cat.SpecializationByID("arcane-school")
	require.True(t, ok)
	assert.Len(t, st.Options, 2)
}

func TestAvailableSpecializations_ScriptedPredicate(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())
	eng := rules.NewEligibility(specCatalog(), eval)

	optionIDs := func(level int) []string {
		var ids []string
		for _, st := range eng.AvailableSpecializations("bard", level) {
			for _, opt := range st.Options {
				ids = append(ids, opt.ID)
			}
		}
		return ids
	}

	assert.NotContains(t, optionIDs(3), "enigma")
	assert.Contains(t, optionIDs(4), "enigma")
}

func TestAvailableSpecializations_PredicateWithoutEvaluatorHidden(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	for _, st := range eng.AvailableSpecializations("bard", 4) {
		for _, opt := range st.Options {
			assert.NotEqual(t, "enigma", opt.ID)
		}
	}
}

func TestToggleSpecializationOption_CapEnforced(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	c := makeWizard(1)

	for _, opt := range []string{"improved-familiar", "metamagic", "spell-blending"} {
		c = eng.ToggleSpecializationOption(c, "arcane-thesis", opt)
	}
	require.Len(t, c.Specializations["arcane-thesis"], 3)

	// A fourth selection against max_selections=3 leaves the set unchanged.
	out := eng.ToggleSpecializationOption(c, "arcane-thesis", "staff-nexus")
	assert.Len(t, out.Specializations["arcane-thesis"], 3)
	assert.NotContains(t, out.Specializations["arcane-thesis"], "staff-nexus")
}

func TestToggleSpecializationOption_SingleSelectReplaces(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	c := makeWizard(4)

	c = eng.ToggleSpecializationOption(c, "arcane-school", "school-of-battle")
	c = eng.ToggleSpecializationOption(c, "arcane-school", "school-of-mind")
	assert.Equal(t, []string{"school-of-mind"}, c.Specializations["arcane-school"])
}

func TestToggleSpecializationOption_IneligibleOptionIsIdentity(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	c := makeWizard(1)

	// school-of-mind unlocks at level 4.
	assert.Same(t, c, eng.ToggleSpecializationOption(c, "arcane-school", "school-of-mind"))
}

func TestToggleSpecializationOption_WrongClassIsIdentity(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	c := makeBard(4)
	assert.Same(t, c, eng.ToggleSpecializationOption(c, "arcane-school", "school-of-battle"))
}

func TestToggleSpecializationOption_UnknownTypeIsIdentity(t *testing.T) {
	eng := rules.NewEligibility(specCatalog(), nil)
	c := makeWizard(1)
	assert.Same(t, c, eng.ToggleSpecializationOption(c, "no-such-type", "anything"))
}
