package sheetv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	sheetv1 "github.com/soren-hale/charforge/internal/sheetserver/sheetv1"
)

func TestProto_CharacterSheet_Roundtrip(t *testing.T) {
	orig := &sheetv1.CharacterSheet{
		Id:        "b4b9a7a4-6f3e-4a6e-9d2e-8f1c2c6a0001",
		AccountId: 7,
		Name:      "Ezren",
		ClassId:   "wizard",
		Level:     5,
		BaseScores: map[string]int32{
			"intelligence": 16, "strength": 10,
		},
		CurrentScores: map[string]int32{
			"intelligence": 18, "strength": 10,
		},
		GradualBoosts: true,
		Boosts: []*sheetv1.BoostEvent{
			{Level: 2, Abilities: []string{"intelligence"}},
			{Level: 5, Abilities: []string{"intelligence", "dexterity", "constitution", "wisdom"}},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &sheetv1.CharacterSheet{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.Equal(t, orig.Id, got.Id)
	assert.Equal(t, orig.Level, got.Level)
	assert.Equal(t, orig.CurrentScores["intelligence"], got.CurrentScores["intelligence"])
	require.Len(t, got.Boosts, 2)
	assert.Equal(t, orig.Boosts[1].Abilities, got.Boosts[1].Abilities)
}

func TestProto_ApplyBoostsRequest_Roundtrip(t *testing.T) {
	orig := &sheetv1.ApplyBoostsRequest{
		CharacterId: "b4b9a7a4-6f3e-4a6e-9d2e-8f1c2c6a0001",
		Level:       10,
		Abilities:   []string{"strength", "dexterity", "constitution", "intelligence"},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &sheetv1.ApplyBoostsRequest{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.Equal(t, orig.CharacterId, got.CharacterId)
	assert.Equal(t, orig.Level, got.Level)
	assert.Equal(t, orig.Abilities, got.Abilities)
}

func TestProto_CharacterResponse_ChangedFlag(t *testing.T) {
	orig := &sheetv1.CharacterResponse{
		Character: &sheetv1.CharacterSheet{Id: "x", Name: "Amiri"},
		Changed:   true,
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &sheetv1.CharacterResponse{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.True(t, got.Changed)
	assert.Equal(t, "Amiri", got.Character.Name)
}

func TestProto_Spellbook_Roundtrip(t *testing.T) {
	orig := &sheetv1.Spellbook{
		Feature:          "spellbook",
		Spells:           []string{"magic-missile", "fireball"},
		DailyPreparation: "fireball",
		ExtraSpells: []*sheetv1.ExtraSpell{
			{Rank: 1, SpellId: "magic-missile"},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &sheetv1.Spellbook{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.Equal(t, orig.Spells, got.Spells)
	assert.Equal(t, orig.DailyPreparation, got.DailyPreparation)
	require.Len(t, got.ExtraSpells, 1)
	assert.Equal(t, "magic-missile", got.ExtraSpells[0].SpellId)
}
