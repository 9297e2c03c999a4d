package rules

import (
	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

// hasFeat reports whether the character has already taken the feat.
func hasFeat(c *character.Character, featID string) bool {
	for _, f := range c.Feats {
		if f.FeatID == featID {
			return true
		}
	}
	return false
}

// EligibleFeats returns the catalog feats the character could take: feat
// level at or below the character's level, not already taken. An empty
// category matches every category.
func EligibleFeats(cat *catalog.Catalog, c *character.Character, category string) []*catalog.Feat {
	var eligible []*catalog.Feat
	for _, f := range cat.Feats() {
		if f.Level > c.Level {
			continue
		}
		if category != "" && f.Category != category {
			continue
		}
		if hasFeat(c, f.ID) {
			continue
		}
		eligible = append(eligible, f)
	}
	return eligible
}

// TakeFeat records the feat as taken at the given character level and returns
// the new snapshot. Identity when the feat is unknown, already taken, or the
// level is outside [feat level, character level].
func TakeFeat(c *character.Character, cat *catalog.Catalog, featID string, level int) *character.Character {
	f, ok := cat.FeatByID(featID)
	if !ok {
		return c
	}
	if level < f.Level || level > c.Level || level < 1 {
		return c
	}
	if hasFeat(c, featID) {
		return c
	}
	out := c.Clone()
	out.Feats = append(out.Feats, character.CharacterFeat{
		FeatID:   f.ID,
		Level:    level,
		Category: f.Category,
	})
	return out
}

// RemoveFeat retracts a taken feat and returns the new snapshot. A feat the
// character never took is identity.
func RemoveFeat(c *character.Character, featID string) *character.Character {
	if !hasFeat(c, featID) {
		return c
	}
	out := c.Clone()
	kept := out.Feats[:0]
	for _, f := range out.Feats {
		if f.FeatID != featID {
			kept = append(kept, f)
		}
	}
	out.Feats = kept
	return out
}
