package catalog

// Catalog is the read-only accessor over all loaded game content. Lookup
// misses return zero values, never errors: an unknown ID means "no content",
// and callers degrade gracefully rather than fail.
type Catalog struct {
	classes     map[string]*Class
	classOrder  []*Class
	feats       map[string]*Feat
	featOrder   []*Feat
	spells      map[string]*Spell
	spellOrder  []*Spell
	specsByType map[string]*SpecializationType
	specsByCls  map[string][]*SpecializationType
	skills      map[string]*SkillDefinition
	skillOrder  []*SkillDefinition
}

// New creates an empty Catalog ready to accept registrations.
//
// Postcondition: Returns a non-nil *Catalog.
func New() *Catalog {
	return &Catalog{
		classes:     make(map[string]*Class),
		feats:       make(map[string]*Feat),
		spells:      make(map[string]*Spell),
		specsByType: make(map[string]*SpecializationType),
		specsByCls:  make(map[string][]*SpecializationType),
		skills:      make(map[string]*SkillDefinition),
	}
}

// Dirs names the content directories the catalog loads from.
type Dirs struct {
	Classes         string
	Feats           string
	Spells          string
	Specializations string
	Skills          string
}

// Load reads every content directory and returns a populated Catalog.
//
// Precondition: every directory in dirs must be readable.
// Postcondition: Returns a fully registered Catalog or a non-nil error.
func Load(dirs Dirs) (*Catalog, error) {
	cat := New()

	classes, err := LoadClasses(dirs.Classes)
	if err != nil {
		return nil, err
	}
	for _, c := range classes {
		cat.RegisterClass(c)
	}

	feats, err := LoadFeats(dirs.Feats)
	if err != nil {
		return nil, err
	}
	for _, f := range feats {
		cat.RegisterFeat(f)
	}

	spells, err := LoadSpells(dirs.Spells)
	if err != nil {
		return nil, err
	}
	for _, s := range spells {
		cat.RegisterSpell(s)
	}

	specs, err := LoadSpecializations(dirs.Specializations)
	if err != nil {
		return nil, err
	}
	for _, st := range specs {
		cat.RegisterSpecialization(st)
	}

	skills, err := LoadSkills(dirs.Skills)
	if err != nil {
		return nil, err
	}
	for _, sk := range skills {
		cat.RegisterSkill(sk)
	}

	return cat, nil
}

// RegisterClass adds a Class; the last registration with an ID wins.
//
// Precondition: c must be non-nil with a non-empty ID.
func (cat *Catalog) RegisterClass(c *Class) {
	if _, seen := cat.classes[c.ID]; !seen {
		cat.classOrder = append(cat.classOrder, c)
	}
	cat.classes[c.ID] = c
}

// RegisterFeat adds a Feat; the last registration with an ID wins.
//
// Precondition: f must be non-nil with a non-empty ID.
func (cat *Catalog) RegisterFeat(f *Feat) {
	if _, seen := cat.feats[f.ID]; !seen {
		cat.featOrder = append(cat.featOrder, f)
	}
	cat.feats[f.ID] = f
}

// RegisterSpell adds a Spell; the last registration with an ID wins.
//
// Precondition: s must be non-nil with a non-empty ID.
func (cat *Catalog) RegisterSpell(s *Spell) {
	if _, seen := cat.spells[s.ID]; !seen {
		cat.spellOrder = append(cat.spellOrder, s)
	}
	cat.spells[s.ID] = s
}

// RegisterSpecialization adds a SpecializationType keyed by ID and class.
//
// Precondition: st must be non-nil with non-empty ID and ClassID.
func (cat *Catalog) RegisterSpecialization(st *SpecializationType) {
	if _, seen := cat.specsByType[st.ID]; !seen {
		cat.specsByCls[st.ClassID] = append(cat.specsByCls[st.ClassID], st)
	}
	cat.specsByType[st.ID] = st
}

// RegisterSkill adds a SkillDefinition keyed by name.
//
// Precondition: sk must be non-nil with a non-empty Name.
func (cat *Catalog) RegisterSkill(sk *SkillDefinition) {
	if _, seen := cat.skills[sk.Name]; !seen {
		cat.skillOrder = append(cat.skillOrder, sk)
	}
	cat.skills[sk.Name] = sk
}

// Classes returns all registered classes in registration order.
func (cat *Catalog) Classes() []*Class {
	return cat.classOrder
}

// ClassByID returns the Class for id, or (nil, false) if not found.
func (cat *Catalog) ClassByID(id string) (*Class, bool) {
	c, ok := cat.classes[id]
	return c, ok
}

// Feats returns all registered feats in registration order.
func (cat *Catalog) Feats() []*Feat {
	return cat.featOrder
}

// FeatByID returns the Feat for id, or (nil, false) if not found.
func (cat *Catalog) FeatByID(id string) (*Feat, bool) {
	f, ok := cat.feats[id]
	return f, ok
}

// Spells returns all registered spells in registration order.
func (cat *Catalog) Spells() []*Spell {
	return cat.spellOrder
}

// SpellByID returns the Spell for id, or (nil, false) if not found.
func (cat *Catalog) SpellByID(id string) (*Spell, bool) {
	s, ok := cat.spells[id]
	return s, ok
}

// SpecializationsForClass returns the specialization types declared for the
// class, unfiltered by level. Unknown class IDs yield an empty slice.
func (cat *Catalog) SpecializationsForClass(classID string) []*SpecializationType {
	return cat.specsByCls[classID]
}

// SpecializationByID returns the SpecializationType for id, or (nil, false).
func (cat *Catalog) SpecializationByID(id string) (*SpecializationType, bool) {
	st, ok := cat.specsByType[id]
	return st, ok
}

// Skills returns all registered skill definitions in registration order.
func (cat *Catalog) Skills() []*SkillDefinition {
	return cat.skillOrder
}

// SkillByName returns the SkillDefinition for name, or (nil, false).
func (cat *Catalog) SkillByName(name string) (*SkillDefinition, bool) {
	sk, ok := cat.skills[name]
	return sk, ok
}
