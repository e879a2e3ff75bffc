// kbcheck lints the knowledge tables: every disease needs variants and
// a medication line, every symptom surface term must resolve, every
// treatment needs English text, and every pattern needs an English
// response. Run it after editing the tables.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"ai-triage-be/pkg/triage/knowledge"
)

func main() {
	kb := knowledge.Load()
	problems := 0

	for _, d := range kb.Diseases() {
		if len(d.Variants) == 0 {
			problems++
			color.Red("disease %q has no keyword variants", d.Name)
		}
		if d.Medication == "" {
			problems++
			color.Red("disease %q has no medication summary", d.Name)
		}
	}

	// Every surface term must reach a canonical symptom; canonical
	// symptoms referenced by the pattern table should have treatments.
	for term, canon := range kb.SurfaceTerms() {
		if canon == "" {
			problems++
			color.Red("surface term %q maps to empty symptom", term)
		}
	}

	for symptom, ok := range treatmentCoverage(kb) {
		if !ok {
			color.Yellow("pattern symptom %q has no treatment entry", symptom)
		}
	}

	for _, p := range kb.Patterns() {
		if _, ok := p.Responses["en"]; !ok {
			problems++
			color.Red("pattern %q is missing the English response", p.Symptom)
		}
		if len(p.Keywords) == 0 {
			problems++
			color.Red("pattern %q has no keywords", p.Symptom)
		}
	}

	for _, t := range []string{"urgent", "moderate", "low"} {
		if len(kb.SeverityKeywords(t)) == 0 {
			problems++
			color.Red("severity tier %q is empty", t)
		}
	}

	if problems > 0 {
		fmt.Printf("\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
	color.Green("knowledge tables OK: %d diseases, %d surface terms, %d patterns",
		len(kb.Diseases()), len(kb.SurfaceTerms()), len(kb.Patterns()))
}

func treatmentCoverage(kb *knowledge.Base) map[string]bool {
	out := make(map[string]bool)
	for _, p := range kb.Patterns() {
		_, ok := kb.TreatmentFor(p.Symptom)
		out[p.Symptom] = ok
	}
	return out
}
