// Package prescribe turns tracked symptoms into concrete medicine and
// test recommendations once enough is known about the patient.
package prescribe

import (
	"fmt"
	"time"

	"ai-triage-be/pkg/triage/dialog"
	"ai-triage-be/pkg/triage/knowledge"
)

// Prescriber builds prescriptions from knowledge-base templates, scaled
// by patient age and symptom severity.
type Prescriber struct {
	kb *knowledge.Base
}

func New(kb *knowledge.Base) *Prescriber {
	return &Prescriber{kb: kb}
}

// Build produces medicine and test records for the tracked symptoms.
// Symptoms without templates are skipped; if nothing matches at all a
// safe paracetamol plus CBC fallback is returned so the patient never
// leaves empty handed.
func (p *Prescriber) Build(profile dialog.UserInfo, symptoms []dialog.TrackedSymptom) ([]dialog.PrescribedMedicine, []dialog.OrderedTest) {
	var medicines []dialog.PrescribedMedicine
	var tests []dialog.OrderedTest
	seenMed := make(map[string]bool)
	seenTest := make(map[string]bool)

	for _, s := range symptoms {
		t, ok := p.kb.TreatmentFor(s.Name)
		if !ok {
			continue
		}
		for _, m := range t.Medicines {
			if seenMed[m.Name] {
				continue
			}
			seenMed[m.Name] = true
			medicines = append(medicines, dialog.PrescribedMedicine{
				Name:         m.Name,
				Composition:  m.Composition,
				Dosage:       scaleDosage(m.Dosage, profile.Age),
				Frequency:    m.Frequency,
				Duration:     scaleDuration(m.Duration, s.Severity),
				Instructions: instructionsFor(profile.Age),
				Timing:       m.Timing,
				PrescribedAt: time.Now(),
			})
		}
		for _, tt := range t.Tests {
			if seenTest[tt.Name] {
				continue
			}
			seenTest[tt.Name] = true
			tests = append(tests, dialog.OrderedTest{
				Name:      tt.Name,
				Reason:    fmt.Sprintf("evaluation of %s", s.Name),
				OrderedAt: time.Now(),
				Status:    "pending",
			})
		}
	}

	if len(medicines) == 0 && len(tests) == 0 && len(symptoms) > 0 {
		medicines = append(medicines, dialog.PrescribedMedicine{
			Name:         "Paracetamol",
			Composition:  "Paracetamol 500mg",
			Dosage:       scaleDosage("500mg", profile.Age),
			Frequency:    "every 6 hours as needed",
			Duration:     "3 days",
			Instructions: instructionsFor(profile.Age),
			Timing:       "after meals",
			PrescribedAt: time.Now(),
		})
		tests = append(tests, dialog.OrderedTest{
			Name:      "Complete Blood Count (CBC)",
			Reason:    "baseline evaluation",
			OrderedAt: time.Now(),
			Status:    "pending",
		})
	}

	return medicines, tests
}

// scaleDosage applies age-band adjustment: children get half the adult
// dose, elderly patients a note to start low.
func scaleDosage(adult string, age int) string {
	switch {
	case age > 0 && age < 12:
		return "half adult dose (" + adult + " adult)"
	case age >= 65:
		return adult + " (start at lower end for elderly)"
	default:
		return adult
	}
}

// scaleDuration extends the course one notch for severe presentations.
func scaleDuration(base, severityLevel string) string {
	if severityLevel != "severe" {
		return base
	}
	switch base {
	case "2 days":
		return "3 days"
	case "3 days":
		return "5 days"
	default:
		return base
	}
}

func instructionsFor(age int) string {
	if age > 0 && age < 12 {
		return "Pediatric dose; consult doctor before use"
	}
	return "Take with water, do not exceed the stated dose"
}
