package rules

import (
	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
)

// AvailabilityEvaluator evaluates an option's scripted availability
// predicate. Implemented by scripting.Evaluator.
type AvailabilityEvaluator interface {
	Available(expr string, level int, classID string) bool
}

// Eligibility answers the read path of the rules engine: which
// specialization types and options are currently selectable.
type Eligibility struct {
	cat  *catalog.Catalog
	eval AvailabilityEvaluator
}

// NewEligibility creates an Eligibility engine.
//
// Precondition: cat must be non-nil. eval may be nil; options carrying a
// scripted predicate are then never surfaced.
func NewEligibility(cat *catalog.Catalog, eval AvailabilityEvaluator) *Eligibility {
	return &Eligibility{cat: cat, eval: eval}
}

// AvailableSpecializations returns the specialization types selectable for
// the class at the given level, each carrying only its currently unlockable
// options. A type whose level gate is not met, and a type left with zero
// eligible options, are dropped: a type must have at least one selectable
// option to be surfaced. Unknown class IDs yield an empty result, not an
// error, so a stale UI request degrades to an empty list.
func (e *Eligibility) AvailableSpecializations(classID string, level int) []*catalog.SpecializationType {
	var out []*catalog.SpecializationType
	for _, st := range e.cat.SpecializationsForClass(classID) {
		if st.Level > level {
			continue
		}
		options := e.eligibleOptions(st, classID, level)
		if len(options) == 0 {
			continue
		}
		// Shallow-copy the type with the filtered option list; the
		// registered catalog entry stays untouched.
		filtered := *st
		filtered.Options = options
		out = append(out, &filtered)
	}
	return out
}

func (e *Eligibility) eligibleOptions(st *catalog.SpecializationType, classID string, level int) []*catalog.SpecializationOption {
	var out []*catalog.SpecializationOption
	for _, opt := range st.Options {
		if opt.MinLevel > level {
			continue
		}
		if opt.Availability != "" {
			if e.eval == nil || !e.eval.Available(opt.Availability, level, classID) {
				continue
			}
		}
		out = append(out, opt)
	}
	return out
}

// ToggleSpecializationOption toggles an option within the character's
// selection for the given specialization type, enforcing the type's
// cardinality. Ineligible options and unknown types are identity.
func (e *Eligibility) ToggleSpecializationOption(c *character.Character, typeID, optionID string) *character.Character {
	st, ok := e.cat.SpecializationByID(typeID)
	if !ok || st.ClassID != c.ClassID || st.Level > c.Level {
		return c
	}
	if !e.optionEligible(st, c, optionID) {
		return c
	}

	current := c.Specializations[typeID]
	next := ToggleSelection(current, optionID, st.MaxSelections)

	out := c.Clone()
	if out.Specializations == nil {
		out.Specializations = make(map[string][]string)
	}
	out.Specializations[typeID] = next
	return out
}

func (e *Eligibility) optionEligible(st *catalog.SpecializationType, c *character.Character, optionID string) bool {
	for _, opt := range e.eligibleOptions(st, c.ClassID, c.Level) {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
