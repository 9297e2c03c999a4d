package rules_test

import (
	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

// testCatalog builds a small in-memory catalog: a wizard with a spellbook
// feature, a bard with a bonus-spell-per-rank feature, a handful of spells
// across traditions, and the skill list the training tests draw from.
func testCatalog() *catalog.Catalog {
	cat := catalog.New()

	cat.RegisterClass(&catalog.Class{
		ID:             "wizard",
		Name:           "Wizard",
		KeyAbility:     "intelligence",
		BaseSkillSlots: 2,
		TrainedSkills:  []string{"arcana"},
		Spellcasting: &catalog.Spellcasting{
			Feature:   catalog.FeatureSpellbook,
			Name:      "wizard-spellbook",
			Tradition: catalog.TraditionArcane,
		},
	})
	cat.RegisterClass(&catalog.Class{
		ID:             "bard",
		Name:           "Bard",
		KeyAbility:     "charisma",
		BaseSkillSlots: 3,
		TrainedSkills:  []string{"occultism", "performance"},
		Spellcasting: &catalog.Spellcasting{
			Feature:   catalog.FeatureBonusPerRank,
			Name:      "esoteric-repertoire",
			Tradition: catalog.TraditionOccult,
		},
	})

	cat.RegisterSpell(&catalog.Spell{
		ID: "shield", Name: "Shield", Rank: 0,
		Traditions: []string{catalog.TraditionArcane},
	})
	cat.RegisterSpell(&catalog.Spell{
		ID: "mystic-armor", Name: "Mystic Armor", Rank: 1,
		Traditions: []string{catalog.TraditionArcane},
	})
	cat.RegisterSpell(&catalog.Spell{
		ID: "invisibility", Name: "Invisibility", Rank: 2,
		Traditions: []string{catalog.TraditionArcane, catalog.TraditionOccult},
	})
	cat.RegisterSpell(&catalog.Spell{
		ID: "animal-messenger", Name: "Animal Messenger", Rank: 2, Ritual: true,
		Traditions: []string{catalog.TraditionPrimal},
	})
	cat.RegisterSpell(&catalog.Spell{
		ID: "heal", Name: "Heal", Rank: 1,
		Traditions: []string{catalog.TraditionDivine, catalog.TraditionPrimal},
	})
	cat.RegisterSpell(&catalog.Spell{
		ID: "phantom-pain", Name: "Phantom Pain", Rank: 1,
		Traditions: []string{catalog.TraditionOccult},
	})
	cat.RegisterSpell(&catalog.Spell{
		ID: "fireball", Name: "Fireball", Rank: 3,
		Traditions: []string{catalog.TraditionArcane, catalog.TraditionPrimal},
	})

	cat.RegisterFeat(&catalog.Feat{
		ID: "reach-spell", Name: "Reach Spell", Level: 1, Category: catalog.FeatClass,
	})
	cat.RegisterFeat(&catalog.Feat{
		ID: "spell-penetration", Name: "Spell Penetration", Level: 6, Category: catalog.FeatClass,
	})
	cat.RegisterFeat(&catalog.Feat{
		ID: "toughness", Name: "Toughness", Level: 1, Category: catalog.FeatGeneral,
	})

	for _, sk := range []struct{ name, ability string }{
		{"arcana", "intelligence"},
		{"athletics", "strength"},
		{"diplomacy", "charisma"},
		{"occultism", "intelligence"},
		{"performance", "charisma"},
		{"stealth", "dexterity"},
		{"survival", "wisdom"},
	} {
		cat.RegisterSkill(&catalog.SkillDefinition{Name: sk.name, Ability: sk.ability})
	}

	return cat
}

func makeWizard(level int) *character.Character {
	c := makeCharacter(level, false)
	c.ClassID = "wizard"
	c.Skills = []character.TrainedSkill{
		{Name: "arcana", Ability: character.Intelligence, Rank: character.Trained, Source: character.SourceClass},
	}
	c.Spellbooks = make(map[string]*character.SpellbookState)
	return c
}

func makeBard(level int) *character.Character {
	c := makeCharacter(level, false)
	c.ClassID = "bard"
	c.Spellbooks = make(map[string]*character.SpellbookState)
	return c
}
