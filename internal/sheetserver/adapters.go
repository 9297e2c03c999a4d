package sheetserver

import (
	"sort"

	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
	"github.com/soren-hale/charforge/internal/game/rules"
	sheetv1 "github.com/soren-hale/charforge/internal/sheetserver/sheetv1"
	"github.com/soren-hale/charforge/internal/storage/postgres"
)

// scoresToProto flattens ability scores into a name-keyed map.
func scoresToProto(scores character.AbilityScores) map[string]int32 {
	out := make(map[string]int32, len(character.Abilities))
	for _, ab := range character.Abilities {
		out[string(ab)] = int32(scores.Score(ab))
	}
	return out
}

func abilitiesFromProto(names []string) []character.Ability {
	out := make([]character.Ability, 0, len(names))
	for _, n := range names {
		out = append(out, character.Ability(n))
	}
	return out
}

func abilitiesToProto(abilities []character.Ability) []string {
	out := make([]string, 0, len(abilities))
	for _, ab := range abilities {
		out = append(out, string(ab))
	}
	return out
}

// sheetToProto converts a character into its wire representation. Current
// scores are derived from the boost history so the client never has to replay
// boosts itself.
func sheetToProto(c *character.Character) *sheetv1.CharacterSheet {
	sheet := &sheetv1.CharacterSheet{
		Id:            c.ID,
		AccountId:     c.AccountID,
		Name:          c.Name,
		ClassId:       c.ClassID,
		Level:         int32(c.Level),
		BaseScores:    scoresToProto(c.Abilities),
		CurrentScores: scoresToProto(rules.CurrentScores(c)),
		GradualBoosts: c.Variants.GradualBoosts,
		CreatedAt:     c.CreatedAt.Unix(),
		UpdatedAt:     c.UpdatedAt.Unix(),
	}

	levels := make([]int, 0, len(c.Boosts))
	for lvl := range c.Boosts {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	for _, lvl := range levels {
		sheet.Boosts = append(sheet.Boosts, &sheetv1.BoostEvent{
			Level:     int32(lvl),
			Abilities: abilitiesToProto(c.Boosts[lvl]),
		})
	}

	for _, sk := range c.Skills {
		sheet.Skills = append(sheet.Skills, &sheetv1.TrainedSkill{
			Name:    sk.Name,
			Ability: string(sk.Ability),
			Rank:    sk.Rank.String(),
			Source:  sk.Source,
		})
	}

	for _, f := range c.Feats {
		sheet.Feats = append(sheet.Feats, &sheetv1.CharacterFeat{
			FeatId:   f.FeatID,
			Level:    int32(f.Level),
			Category: f.Category,
			Choices:  f.Choices,
		})
	}

	typeIDs := make([]string, 0, len(c.Specializations))
	for id := range c.Specializations {
		typeIDs = append(typeIDs, id)
	}
	sort.Strings(typeIDs)
	for _, id := range typeIDs {
		sheet.Specializations = append(sheet.Specializations, &sheetv1.SpecializationSelection{
			TypeId:    id,
			OptionIds: append([]string(nil), c.Specializations[id]...),
		})
	}

	features := make([]string, 0, len(c.Spellbooks))
	for name := range c.Spellbooks {
		features = append(features, name)
	}
	sort.Strings(features)
	for _, name := range features {
		book := c.Spellbooks[name]
		pb := &sheetv1.Spellbook{
			Feature:          name,
			Spells:           append([]string(nil), book.Spells...),
			DailyPreparation: book.DailyPreparation,
		}
		ranks := make([]int, 0, len(book.ExtraSpells))
		for rank := range book.ExtraSpells {
			ranks = append(ranks, rank)
		}
		sort.Ints(ranks)
		for _, rank := range ranks {
			pb.ExtraSpells = append(pb.ExtraSpells, &sheetv1.ExtraSpell{
				Rank:    int32(rank),
				SpellId: book.ExtraSpells[rank],
			})
		}
		sheet.Spellbooks = append(sheet.Spellbooks, pb)
	}

	return sheet
}

func classToProto(cl *catalog.Class) *sheetv1.Class {
	pb := &sheetv1.Class{
		Id:                cl.ID,
		Name:              cl.Name,
		Description:       cl.Description,
		KeyAbility:        cl.KeyAbility,
		HitPointsPerLevel: int32(cl.HitPointsPerLevel),
		BaseSkillSlots:    int32(cl.BaseSkillSlots),
		TrainedSkills:     append([]string(nil), cl.TrainedSkills...),
	}
	if cl.Spellcasting != nil {
		pb.Spellcasting = &sheetv1.Spellcasting{
			Feature:   cl.Spellcasting.Feature,
			Name:      cl.Spellcasting.Name,
			Tradition: cl.Spellcasting.Tradition,
		}
	}
	return pb
}

func skillToProto(sk *catalog.SkillDefinition) *sheetv1.SkillDefinition {
	return &sheetv1.SkillDefinition{
		Name:        sk.Name,
		Ability:     sk.Ability,
		Description: sk.Description,
	}
}

func spellToProto(sp *catalog.Spell) *sheetv1.Spell {
	return &sheetv1.Spell{
		Id:          sp.ID,
		Name:        sp.Name,
		Rank:        int32(sp.Rank),
		Traditions:  append([]string(nil), sp.Traditions...),
		Ritual:      sp.Ritual,
		Description: sp.Description,
	}
}

func featToProto(f *catalog.Feat) *sheetv1.Feat {
	return &sheetv1.Feat{
		Id:            f.ID,
		Name:          f.Name,
		Level:         int32(f.Level),
		Category:      f.Category,
		Prerequisites: f.Prerequisites,
		Rarity:        f.Rarity,
		Traits:        append([]string(nil), f.Traits...),
		Description:   f.Description,
	}
}

func accountToProto(acct postgres.Account) *sheetv1.Account {
	return &sheetv1.Account{
		Id:        acct.ID,
		Username:  acct.Username,
		Role:      acct.Role,
		CreatedAt: acct.CreatedAt.Unix(),
	}
}

func specializationTypeToProto(st *catalog.SpecializationType) *sheetv1.SpecializationType {
	pb := &sheetv1.SpecializationType{
		Id:            st.ID,
		Name:          st.Name,
		Level:         int32(st.Level),
		MaxSelections: int32(st.MaxSelections),
	}
	for _, opt := range st.Options {
		pb.Options = append(pb.Options, &sheetv1.SpecializationOption{
			Id:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			MinLevel:    int32(opt.MinLevel),
		})
	}
	return pb
}
