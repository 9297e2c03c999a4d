package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/soren-hale/charforge/internal/game/character"
)

func TestModifier(t *testing.T) {
	cases := map[int]int{
		7: -2, 8: -1, 9: -1, 10: 0, 11: 0, 12: 1, 13: 1, 14: 2, 17: 3, 18: 4, 19: 4, 20: 5,
	}
	for score, want := range cases {
		assert.Equal(t, want, character.Modifier(score), "score %d", score)
	}
}

func TestScoreAndWithScore_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scores := character.BaseScores()
		ab := rapid.SampledFrom(character.Abilities).Draw(rt, "ability")
		v := rapid.IntRange(1, 30).Draw(rt, "value")
		if got := scores.WithScore(ab, v).Score(ab); got != v {
			rt.Fatalf("WithScore/Score round trip: got %d, want %d", got, v)
		}
	})
}

func TestProficiency_Ordering(t *testing.T) {
	assert.True(t, character.Legendary.Meets(character.Master))
	assert.True(t, character.Trained.Meets(character.Trained))
	assert.False(t, character.Untrained.Meets(character.Trained))
}

func TestProficiency_ParseRoundTrip(t *testing.T) {
	for _, p := range []character.Proficiency{
		character.Untrained, character.Trained, character.Expert, character.Master, character.Legendary,
	} {
		parsed, err := character.ParseProficiency(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := character.ParseProficiency("grandmaster")
	require.Error(t, err)
}

func TestProficiency_JSONAsName(t *testing.T) {
	data, err := json.Marshal(character.Expert)
	require.NoError(t, err)
	assert.Equal(t, `"expert"`, string(data))

	var p character.Proficiency
	require.NoError(t, json.Unmarshal([]byte(`"master"`), &p))
	assert.Equal(t, character.Master, p)
}

func TestMaxSpellRank(t *testing.T) {
	cases := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 10: 5, 19: 10, 20: 10}
	for level, want := range cases {
		c := &character.Character{Level: level}
		assert.Equal(t, want, c.MaxSpellRank(), "level %d", level)
	}
}

func TestClone_DeepCopiesNestedState(t *testing.T) {
	c := &character.Character{
		ID:    "c1",
		Level: 5,
		Boosts: map[int][]character.Ability{
			5: {character.Strength, character.Dexterity},
		},
		Skills: []character.TrainedSkill{{Name: "arcana", Rank: character.Trained}},
		Feats: []character.CharacterFeat{
			{FeatID: "toughness", Level: 1, Choices: map[string]string{"stance": "iron"}},
		},
		Specializations: map[string][]string{"arcane-school": {"evocation"}},
		Spellbooks: map[string]*character.SpellbookState{
			"wizard-spellbook": {
				Spells:           []string{"invisibility"},
				DailyPreparation: "invisibility",
				ExtraSpells:      map[int]string{1: "mystic-armor"},
			},
		},
	}

	clone := c.Clone()
	clone.Boosts[5][0] = character.Wisdom
	clone.Boosts[6] = []character.Ability{character.Charisma}
	clone.Skills[0].Rank = character.Expert
	clone.Feats[0].Choices["stance"] = "steel"
	clone.Specializations["arcane-school"][0] = "abjuration"
	clone.Spellbooks["wizard-spellbook"].Spells[0] = "fireball"
	clone.Spellbooks["wizard-spellbook"].DailyPreparation = ""
	clone.Spellbooks["wizard-spellbook"].ExtraSpells[1] = "heal"

	assert.Equal(t, character.Strength, c.Boosts[5][0])
	assert.Nil(t, c.Boosts[6])
	assert.Equal(t, character.Trained, c.Skills[0].Rank)
	assert.Equal(t, "iron", c.Feats[0].Choices["stance"])
	assert.Equal(t, "evocation", c.Specializations["arcane-school"][0])
	assert.Equal(t, "invisibility", c.Spellbooks["wizard-spellbook"].Spells[0])
	assert.Equal(t, "invisibility", c.Spellbooks["wizard-spellbook"].DailyPreparation)
	assert.Equal(t, "mystic-armor", c.Spellbooks["wizard-spellbook"].ExtraSpells[1])
}

func TestSkillRank_UntrainedByDefault(t *testing.T) {
	c := &character.Character{
		Skills: []character.TrainedSkill{{Name: "arcana", Rank: character.Expert}},
	}
	assert.Equal(t, character.Expert, c.SkillRank("arcana"))
	assert.Equal(t, character.Untrained, c.SkillRank("stealth"))
}
