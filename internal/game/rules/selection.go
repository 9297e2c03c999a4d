package rules

// ToggleSelection returns the selection set after toggling candidateID.
// Single-select (maxSelections == 1) always replaces the current selection.
// Multi-select removes candidateID if present; otherwise it is appended only
// while the set is under the cap. An over-cap add is a no-op, not an error:
// the UI disables the control, and this is the defensive second line.
// Selection order is preserved; the input slice is never mutated.
func ToggleSelection(current []string, candidateID string, maxSelections int) []string {
	if maxSelections <= 1 {
		if len(current) == 1 && current[0] == candidateID {
			return []string{}
		}
		return []string{candidateID}
	}

	for i, id := range current {
		if id == candidateID {
			out := make([]string, 0, len(current)-1)
			out = append(out, current[:i]...)
			return append(out, current[i+1:]...)
		}
	}
	if len(current) >= maxSelections {
		return append([]string(nil), current...)
	}
	out := make([]string, 0, len(current)+1)
	out = append(out, current...)
	return append(out, candidateID)
}

// EligibleSkillChoice reports whether skill may be offered as a manual
// training choice. A skill already trained by any non-choice source is
// ineligible, as is the overlap skill that triggered the substitution choice
// (when a background and a class both grant the same skill, the player picks
// a substitute, which must not be the overlapping skill itself).
//
// Invariant: the eligible set never intersects the already-trained set.
func EligibleSkillChoice(skill string, trainedElsewhere []string, excludedSkill string) bool {
	if skill == "" || skill == excludedSkill {
		return false
	}
	for _, name := range trainedElsewhere {
		if name == skill {
			return false
		}
	}
	return true
}
