package character

import (
	"encoding/json"
	"fmt"
)

// Proficiency is an ordered rank. Minimum-rank checks must compare the
// order, never the string form.
type Proficiency int

// Proficiency ranks from lowest to highest.
const (
	Untrained Proficiency = iota
	Trained
	Expert
	Master
	Legendary
)

var proficiencyNames = map[Proficiency]string{
	Untrained: "untrained",
	Trained:   "trained",
	Expert:    "expert",
	Master:    "master",
	Legendary: "legendary",
}

// String returns the lowercase rank name, or "untrained" for out-of-range values.
func (p Proficiency) String() string {
	if name, ok := proficiencyNames[p]; ok {
		return name
	}
	return "untrained"
}

// Meets reports whether the rank satisfies the given minimum.
func (p Proficiency) Meets(min Proficiency) bool {
	return p >= min
}

// ParseProficiency converts a rank name to a Proficiency.
//
// Postcondition: Returns the matching rank or a non-nil error for unknown names.
func ParseProficiency(name string) (Proficiency, error) {
	for rank, n := range proficiencyNames {
		if n == name {
			return rank, nil
		}
	}
	return Untrained, fmt.Errorf("unknown proficiency rank %q", name)
}

// MarshalJSON encodes the rank as its lowercase name so persisted snapshots
// stay readable and stable across reorderings of the constants.
func (p Proficiency) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a lowercase rank name.
func (p *Proficiency) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	rank, err := ParseProficiency(name)
	if err != nil {
		return err
	}
	*p = rank
	return nil
}
