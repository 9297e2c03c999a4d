package rules

import (
	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

// EligibleBonusSpells returns the spells selectable for the bonus-known-spell
// slot at the given rank: feature tradition, exactly that rank, non-ritual.
// Ranks outside 1..max castable rank yield nil, so slots above the
// character's reach are never surfaced.
func EligibleBonusSpells(cat *catalog.Catalog, c *character.Character, rank int) []*catalog.Spell {
	feature, ok := featureOfKind(cat, c, catalog.FeatureBonusPerRank)
	if !ok {
		return nil
	}
	if rank < 1 || rank > c.MaxSpellRank() {
		return nil
	}

	var out []*catalog.Spell
	for _, s := range cat.Spells() {
		if s.Rank == rank && !s.Ritual && s.InTradition(feature.Tradition) {
			out = append(out, s)
		}
	}
	return out
}

// SetExtraSpell replaces or clears (empty spellID) the single bonus-spell
// slot for the given rank and returns the new snapshot. The eligibility
// query never exposes out-of-reach ranks, but the resolver re-checks
// defensively: out-of-range ranks, unknown spells, rank mismatches, rituals,
// and tradition mismatches all return the input unchanged.
func SetExtraSpell(c *character.Character, cat *catalog.Catalog, rank int, spellID string) *character.Character {
	feature, ok := featureOfKind(cat, c, catalog.FeatureBonusPerRank)
	if !ok {
		return c
	}
	if rank < 1 || rank > c.MaxSpellRank() {
		return c
	}
	if spellID != "" {
		spell, known := cat.SpellByID(spellID)
		if !known || spell.Rank != rank || spell.Ritual || !spell.InTradition(feature.Tradition) {
			return c
		}
	}
	book := c.Spellbooks[feature.Name]
	if book == nil && spellID == "" {
		return c
	}
	if book != nil && book.ExtraSpells[rank] == spellID {
		return c
	}

	out := c.Clone()
	if out.Spellbooks == nil {
		out.Spellbooks = make(map[string]*character.SpellbookState)
	}
	outBook := out.Spellbooks[feature.Name]
	if outBook == nil {
		outBook = &character.SpellbookState{}
		out.Spellbooks[feature.Name] = outBook
	}
	if outBook.ExtraSpells == nil {
		outBook.ExtraSpells = make(map[int]string)
	}
	if spellID == "" {
		delete(outBook.ExtraSpells, rank)
	} else {
		outBook.ExtraSpells[rank] = spellID
	}
	return out
}
