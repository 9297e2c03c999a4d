package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

func makeClass(keyAbility string) *catalog.Class {
	return &catalog.Class{
		ID:             "test_class",
		Name:           "Test Class",
		KeyAbility:     keyAbility,
		BaseSkillSlots: 2,
		TrainedSkills:  []string{"arcana"},
	}
}

func TestBuild_AppliesKeyAbilityBoost(t *testing.T) {
	c, err := character.Build("Hero", makeClass("intelligence"), character.VariantFlags{})
	require.NoError(t, err)

	assert.Equal(t, 12, c.Abilities.Intelligence) // 10 base + 2 key ability
	assert.Equal(t, 10, c.Abilities.Strength)
	assert.Equal(t, 10, c.Abilities.Charisma)
}

func TestBuild_GrantsClassSkills(t *testing.T) {
	c, err := character.Build("Hero", makeClass("intelligence"), character.VariantFlags{})
	require.NoError(t, err)

	require.Len(t, c.Skills, 1)
	assert.Equal(t, "arcana", c.Skills[0].Name)
	assert.Equal(t, character.Trained, c.Skills[0].Rank)
	assert.Equal(t, character.SourceClass, c.Skills[0].Source)
}

func TestBuild_StartsAtLevelOne(t *testing.T) {
	c, err := character.Build("Hero", makeClass("strength"), character.VariantFlags{GradualBoosts: true})
	require.NoError(t, err)

	assert.Equal(t, 1, c.Level)
	assert.True(t, c.Variants.GradualBoosts)
	assert.NotEmpty(t, c.ID)
	assert.NotNil(t, c.Boosts)
	assert.NotNil(t, c.Spellbooks)
}

func TestBuild_EmptyNameError(t *testing.T) {
	_, err := character.Build("", makeClass("strength"), character.VariantFlags{})
	require.Error(t, err)
}

func TestBuild_NilClassError(t *testing.T) {
	_, err := character.Build("Hero", nil, character.VariantFlags{})
	require.Error(t, err)
}

func TestBuild_UnknownKeyAbilityIgnored(t *testing.T) {
	c, err := character.Build("Hero", makeClass("moxie"), character.VariantFlags{})
	require.NoError(t, err)
	assert.Equal(t, character.BaseScores(), c.Abilities)
}
