// Package main provides a CLI tool that loads the content catalog and
// reports referential problems before they reach a running server.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soren-hale/charforge/internal/catalog"
)

func main() {
	classesDir := flag.String("classes", "content/classes", "path to class YAML directory")
	featsDir := flag.String("feats", "content/feats", "path to feat YAML directory")
	spellsDir := flag.String("spells", "content/spells", "path to spell YAML directory")
	specsDir := flag.String("specializations", "content/specializations", "path to specialization YAML directory")
	skillsDir := flag.String("skills", "content/skills", "path to skill YAML directory")
	flag.Parse()

	start := time.Now()

	cat, err := catalog.Load(catalog.Dirs{
		Classes:         *classesDir,
		Feats:           *featsDir,
		Spells:          *spellsDir,
		Specializations: *specsDir,
		Skills:          *skillsDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var problems []string

	for _, cl := range cat.Classes() {
		for _, skill := range cl.TrainedSkills {
			if _, ok := cat.SkillByName(skill); !ok {
				problems = append(problems, fmt.Sprintf(
					"class %s: trained skill %q is not in the skill list", cl.ID, skill))
			}
		}
		if sc := cl.Spellcasting; sc != nil {
			if sc.Feature != catalog.FeatureSpellbook && sc.Feature != catalog.FeatureBonusPerRank {
				problems = append(problems, fmt.Sprintf(
					"class %s: unknown spellcasting feature %q", cl.ID, sc.Feature))
			}
			if !validTradition(sc.Tradition) {
				problems = append(problems, fmt.Sprintf(
					"class %s: unknown tradition %q", cl.ID, sc.Tradition))
			}
		}
	}

	for _, sp := range cat.Spells() {
		for _, tr := range sp.Traditions {
			if !validTradition(tr) {
				problems = append(problems, fmt.Sprintf(
					"spell %s: unknown tradition %q", sp.ID, tr))
			}
		}
	}

	for _, cl := range cat.Classes() {
		for _, st := range cat.SpecializationsForClass(cl.ID) {
			if len(st.Options) == 0 {
				problems = append(problems, fmt.Sprintf(
					"specialization %s: no options defined", st.ID))
			}
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		fmt.Fprintf(os.Stderr, "%d problem(s) found in %s\n", len(problems), time.Since(start).Round(time.Millisecond))
		os.Exit(1)
	}

	fmt.Printf("catalog ok: %d classes, %d feats, %d spells, %d skills in %s\n",
		len(cat.Classes()), len(cat.Feats()), len(cat.Spells()), len(cat.Skills()),
		time.Since(start).Round(time.Millisecond))
}

func validTradition(tr string) bool {
	switch tr {
	case catalog.TraditionArcane, catalog.TraditionDivine, catalog.TraditionOccult, catalog.TraditionPrimal:
		return true
	}
	return false
}
