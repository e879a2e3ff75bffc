// Package knowledge holds the static clinical lookup tables the triage
// pipeline runs on: disease keyword variants, symptom surface forms,
// per-language treatments, severity keyword tiers and the response
// patterns used by the cascade. All tables are built once at package
// init and are read-only afterwards, so concurrent readers need no
// locking.
package knowledge

// Disease describes one recognizable condition and the keyword variants
// (English, Devanagari, romanized) that patients use for it.
type Disease struct {
	Name       string
	Variants   []string
	Medication string
	Warning    string
}

// MedicineTemplate is the prescription building block attached to a
// canonical symptom. Dosage is the adult default; the prescriber scales
// it by age band and severity.
type MedicineTemplate struct {
	Name        string
	Composition string
	Dosage      string
	Frequency   string
	Duration    string
	Timing      string
}

// TestTemplate is a diagnostic test suggestion attached to a symptom.
type TestTemplate struct {
	Name         string
	Type         string
	Urgency      string
	Instructions string
}

// Treatment carries everything the engine can say or do about one
// canonical symptom: localized advice, medicines, tests and the
// follow-up question to ask next.
type Treatment struct {
	Advice    map[string]string
	Medicines []MedicineTemplate
	Tests     []TestTemplate
	FollowUp  map[string]string
}

// Pattern drives the rule tier of the response cascade: any keyword hit
// scores the pattern, and the best pattern supplies localized response
// text, follow-up, urgency and category.
type Pattern struct {
	Symptom   string
	Keywords  []string
	Responses map[string]string
	FollowUps map[string]string
	Urgency   string
	Category  string
}

// Base bundles all tables behind one handle so the pipeline components
// share a single load.
type Base struct {
	diseases   []Disease
	surfaceMap map[string]string
	treatments map[string]Treatment
	severity   map[string][]string
	redFlags   []string
	patterns   []Pattern
	farewells  map[string]string
	generic    map[string]string
	emergency  map[string]string
}

var std = &Base{
	diseases:   diseaseTable,
	surfaceMap: symptomSurfaceMap,
	treatments: treatmentTable,
	severity:   severityKeywords,
	redFlags:   redFlagPhrases,
	patterns:   patternTable,
	farewells:  farewellByLanguage,
	generic:    genericByLanguage,
	emergency:  emergencyByLanguage,
}

// Load returns the shared knowledge base.
func Load() *Base {
	return std
}

// Diseases returns the disease table.
func (b *Base) Diseases() []Disease {
	return b.diseases
}

// CanonicalSymptom maps a surface term (hinglish, Devanagari or English)
// to its canonical symptom name. Many terms map to the same symptom.
func (b *Base) CanonicalSymptom(term string) (string, bool) {
	canon, ok := b.surfaceMap[term]
	return canon, ok
}

// SurfaceTerms returns the full surface-term map for scanning.
func (b *Base) SurfaceTerms() map[string]string {
	return b.surfaceMap
}

// TreatmentFor returns the treatment entry for a canonical symptom.
func (b *Base) TreatmentFor(symptom string) (Treatment, bool) {
	t, ok := b.treatments[symptom]
	return t, ok
}

// SeverityKeywords returns the keyword set for one tier ("urgent",
// "moderate" or "low").
func (b *Base) SeverityKeywords(tier string) []string {
	return b.severity[tier]
}

// RedFlags returns the emergency phrase list.
func (b *Base) RedFlags() []string {
	return b.redFlags
}

// Patterns returns the cascade pattern table.
func (b *Base) Patterns() []Pattern {
	return b.patterns
}

// Farewell returns the goodbye reply for a language, falling back to
// English.
func (b *Base) Farewell(lang string) string {
	if s, ok := b.farewells[lang]; ok {
		return s
	}
	return b.farewells["en"]
}

// EmergencyNotice returns the seek-help-now reply for a language,
// falling back to English. Used when a red flag fires without a
// symptom-specific treatment to quote.
func (b *Base) EmergencyNotice(lang string) string {
	if s, ok := b.emergency[lang]; ok {
		return s
	}
	return b.emergency["en"]
}

// Generic returns the tell-me-more reply for a language, falling back
// to English.
func (b *Base) Generic(lang string) string {
	if s, ok := b.generic[lang]; ok {
		return s
	}
	return b.generic["en"]
}
