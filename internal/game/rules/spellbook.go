package rules

import (
	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

// featureOfKind returns the spellcasting feature of the given kind declared
// on the character's class, if any. Feature special cases are catalog data,
// never class-keyed branches in here.
func featureOfKind(cat *catalog.Catalog, c *character.Character, kind string) (*catalog.Spellcasting, bool) {
	class, ok := cat.ClassByID(c.ClassID)
	if !ok || class.Spellcasting == nil || class.Spellcasting.Feature != kind {
		return nil, false
	}
	return class.Spellcasting, true
}

// InitializeSpellbook ensures the character has an empty spellbook sub-state
// for its class's spellbook feature. Idempotent: safe to call on every open
// of the related UI. Characters whose class has no spellbook feature are
// returned unchanged.
func InitializeSpellbook(c *character.Character, cat *catalog.Catalog) *character.Character {
	feature, ok := featureOfKind(cat, c, catalog.FeatureSpellbook)
	if !ok {
		return c
	}
	if _, exists := c.Spellbooks[feature.Name]; exists {
		return c
	}
	out := c.Clone()
	if out.Spellbooks == nil {
		out.Spellbooks = make(map[string]*character.SpellbookState)
	}
	out.Spellbooks[feature.Name] = &character.SpellbookState{}
	return out
}

// EligibleSpellbookSpells returns the spells currently addable to the
// character's spellbook: matching the feature tradition, rank 1 up to the
// character's maximum castable rank, non-ritual, and not already learned.
func EligibleSpellbookSpells(cat *catalog.Catalog, c *character.Character) []*catalog.Spell {
	feature, ok := featureOfKind(cat, c, catalog.FeatureSpellbook)
	if !ok {
		return nil
	}
	book := c.Spellbooks[feature.Name]

	var out []*catalog.Spell
	for _, s := range cat.Spells() {
		if s.Rank < 1 || s.Rank > c.MaxSpellRank() || s.Ritual || !s.InTradition(feature.Tradition) {
			continue
		}
		if book != nil && book.Contains(s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AddSpell learns a spell into the spellbook. Invalid adds are identity, not
// errors: unknown spell IDs, cantrips (rank 0), rituals, tradition
// mismatches, duplicates, and characters without the feature all return the
// input unchanged. The candidate list is pre-filtered by the UI; this is the
// defensive re-check.
func AddSpell(c *character.Character, cat *catalog.Catalog, spellID string) *character.Character {
	feature, ok := featureOfKind(cat, c, catalog.FeatureSpellbook)
	if !ok {
		return c
	}
	spell, ok := cat.SpellByID(spellID)
	if !ok || spell.Rank == 0 || spell.Ritual || !spell.InTradition(feature.Tradition) {
		return c
	}
	if book := c.Spellbooks[feature.Name]; book != nil && book.Contains(spellID) {
		return c
	}

	out := c.Clone()
	if out.Spellbooks == nil {
		out.Spellbooks = make(map[string]*character.SpellbookState)
	}
	book := out.Spellbooks[feature.Name]
	if book == nil {
		book = &character.SpellbookState{}
		out.Spellbooks[feature.Name] = book
	}
	book.Spells = append(book.Spells, spellID)
	return out
}

// RemoveSpell forgets a spell from the spellbook. Removing the spell that is
// currently the daily preparation also clears the preparation, so the
// prepared spell is always a member of the book. Unknown or unlearned spells
// are identity.
func RemoveSpell(c *character.Character, cat *catalog.Catalog, spellID string) *character.Character {
	feature, ok := featureOfKind(cat, c, catalog.FeatureSpellbook)
	if !ok {
		return c
	}
	book := c.Spellbooks[feature.Name]
	if book == nil || !book.Contains(spellID) {
		return c
	}

	out := c.Clone()
	outBook := out.Spellbooks[feature.Name]
	kept := make([]string, 0, len(outBook.Spells)-1)
	for _, id := range outBook.Spells {
		if id != spellID {
			kept = append(kept, id)
		}
	}
	outBook.Spells = kept
	if outBook.DailyPreparation == spellID {
		outBook.DailyPreparation = ""
	}
	return out
}

// SetDailyPreparation sets or clears (empty spellID) the single daily
// preparation slot. Only a member of the spellbook may be prepared;
// membership was enforced at add time, so that is the only check.
func SetDailyPreparation(c *character.Character, cat *catalog.Catalog, spellID string) *character.Character {
	feature, ok := featureOfKind(cat, c, catalog.FeatureSpellbook)
	if !ok {
		return c
	}
	book := c.Spellbooks[feature.Name]
	if book == nil {
		return c
	}
	if spellID != "" && !book.Contains(spellID) {
		return c
	}
	if book.DailyPreparation == spellID {
		return c
	}

	out := c.Clone()
	out.Spellbooks[feature.Name].DailyPreparation = spellID
	return out
}
