package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-hale/charforge/internal/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadClasses_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wizard.yaml"), `
id: wizard
name: "Wizard"
description: "A scholar of the arcane."
key_ability: intelligence
hit_points_per_level: 6
base_skill_slots: 2
trained_skills:
  - arcana
proficiencies:
  weapons: trained
spellcasting:
  feature: spellbook
  name: wizard-spellbook
  tradition: arcane
features:
  - name: "Arcane Spellcasting"
    level: 1
    description: "You cast spells from your spellbook."
`)
	classes, err := catalog.LoadClasses(dir)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	c := classes[0]
	assert.Equal(t, "wizard", c.ID)
	assert.Equal(t, "intelligence", c.KeyAbility)
	assert.Equal(t, 2, c.BaseSkillSlots)
	assert.Equal(t, []string{"arcana"}, c.TrainedSkills)
	require.NotNil(t, c.Spellcasting)
	assert.Equal(t, catalog.FeatureSpellbook, c.Spellcasting.Feature)
	assert.Equal(t, catalog.TraditionArcane, c.Spellcasting.Tradition)
	require.Len(t, c.Features, 1)
	assert.Equal(t, 1, c.Features[0].Level)
}

func TestLoadClasses_MissingIDFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), `
name: "Nameless"
`)
	_, err := catalog.LoadClasses(dir)
	require.Error(t, err)
}

func TestLoadFeats_ParsesYAMLList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "general.yaml"), `
feats:
  - id: toughness
    name: "Toughness"
    level: 1
    category: general
    description: "You can withstand more punishment."
  - id: fleet
    name: "Fleet"
    level: 1
    category: general
    traits:
      - move
`)
	feats, err := catalog.LoadFeats(dir)
	require.NoError(t, err)
	require.Len(t, feats, 2)
	assert.Equal(t, "toughness", feats[0].ID)
	assert.Equal(t, catalog.FeatGeneral, feats[0].Category)
	assert.Equal(t, []string{"move"}, feats[1].Traits)
}

func TestLoadFeats_UnknownCategoryFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), `
feats:
  - id: oddity
    name: "Oddity"
    category: mythic
`)
	_, err := catalog.LoadFeats(dir)
	require.Error(t, err)
}

func TestLoadSpells_ParsesYAMLList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "arcane.yaml"), `
spells:
  - id: invisibility
    name: "Invisibility"
    rank: 2
    traditions:
      - arcane
      - occult
  - id: animal-messenger
    name: "Animal Messenger"
    rank: 2
    ritual: true
    traditions:
      - primal
`)
	spells, err := catalog.LoadSpells(dir)
	require.NoError(t, err)
	require.Len(t, spells, 2)
	assert.True(t, spells[0].InTradition(catalog.TraditionOccult))
	assert.False(t, spells[0].InTradition(catalog.TraditionPrimal))
	assert.True(t, spells[1].Ritual)
}

func TestLoadSpells_RankOutOfRangeFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), `
spells:
  - id: overspell
    name: "Overspell"
    rank: 11
`)
	_, err := catalog.LoadSpells(dir)
	require.Error(t, err)
}

func TestLoadSpecializations_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "arcane_school.yaml"), `
id: arcane-school
class_id: wizard
name: "Arcane School"
level: 1
max_selections: 1
options:
  - id: school-of-battle
    name: "School of Battle Magic"
    source: core
  - id: school-of-mind
    name: "School of the Boundary"
    min_level: 4
    availability: "level >= 4"
`)
	types, err := catalog.LoadSpecializations(dir)
	require.NoError(t, err)
	require.Len(t, types, 1)
	st := types[0]
	assert.Equal(t, "wizard", st.ClassID)
	assert.Equal(t, 1, st.MaxSelections)
	require.Len(t, st.Options, 2)
	assert.Equal(t, 4, st.Options[1].MinLevel)
	assert.Equal(t, "level >= 4", st.Options[1].Availability)
}

func TestLoadSpecializations_ZeroMaxSelectionsFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), `
id: broken
class_id: wizard
name: "Broken"
max_selections: 0
`)
	_, err := catalog.LoadSpecializations(dir)
	require.Error(t, err)
}

func TestLoadSkills_ParsesYAMLList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "skills.yaml"), `
skills:
  - name: arcana
    ability: intelligence
  - name: athletics
    ability: strength
`)
	skills, err := catalog.LoadSkills(dir)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "intelligence", skills[0].Ability)
}

func TestLoaders_EmptyDirectoryIsEmptyContent(t *testing.T) {
	dir := t.TempDir()

	classes, err := catalog.LoadClasses(dir)
	require.NoError(t, err)
	assert.Empty(t, classes)

	spells, err := catalog.LoadSpells(dir)
	require.NoError(t, err)
	assert.Empty(t, spells)
}

func TestLoaders_MissingDirectoryFails(t *testing.T) {
	_, err := catalog.LoadClasses(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
