// Package extract turns free-text patient messages into structured
// symptom and disease matches with confidence scores.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"ai-triage-be/pkg/triage/knowledge"
)

// Confidence tiers for disease keyword matches.
const (
	exactConfidence     = 0.98
	boundaryBase        = 0.85
	boundaryCap         = 0.949
	substringConfidence = 0.75
	surfaceConfidence   = 0.90
	keepThreshold       = 0.6
)

// Symptom is one extracted symptom with whatever modifiers the message
// supplied. Empty modifier fields mean "not mentioned this turn".
type Symptom struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Duration   string  `json:"duration,omitempty"`
	Severity   string  `json:"severity,omitempty"`
	Location   string  `json:"location,omitempty"`
}

// DiseaseMatch is a scored hit against the disease table.
type DiseaseMatch struct {
	Disease        string  `json:"disease"`
	MatchedKeyword string  `json:"matched_keyword"`
	Confidence     float64 `json:"confidence"`
	Medication     string  `json:"medication"`
	Warning        string  `json:"warning"`
}

// Result bundles everything one message yielded.
type Result struct {
	Symptoms []Symptom      `json:"symptoms"`
	Diseases []DiseaseMatch `json:"diseases"`
	Primary  *DiseaseMatch  `json:"primary,omitempty"`
}

// Extractor scans messages against the knowledge base tables.
type Extractor struct {
	kb           *knowledge.Base
	surfaceTerms []string
}

// New builds an extractor over the given knowledge base. Surface terms
// are pre-sorted longest first so multi-word phrases win over their
// single-word components ("pet dard" before "pet").
func New(kb *knowledge.Base) *Extractor {
	terms := make([]string, 0, len(kb.SurfaceTerms()))
	for t := range kb.SurfaceTerms() {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return &Extractor{kb: kb, surfaceTerms: terms}
}

var durationRe = regexp.MustCompile(`(\d+)\s*(din|dino|day|days|hafte|haftey|week|weeks)`)

var locationBySymptom = map[string]string{
	"stomach pain": "abdomen",
	"headache":     "head",
	"chest pain":   "chest",
	"back pain":    "back",
	"sore throat":  "throat",
}

// Extract runs the disease pass, the symptom surface pass and the
// modifier passes over one message. langHint is accepted for symmetry
// with the rest of the pipeline; the tables are language-agnostic.
func (e *Extractor) Extract(text, langHint string) Result {
	_ = langHint
	lower := strings.ToLower(strings.TrimSpace(text))
	res := Result{}
	if lower == "" {
		return res
	}

	res.Diseases = e.matchDiseases(lower)
	res.Primary = pickPrimary(res.Diseases)
	res.Symptoms = e.matchSymptoms(lower)

	duration := extractDuration(lower)
	severity := extractSeverityAdjective(lower)
	for i := range res.Symptoms {
		if duration != "" {
			res.Symptoms[i].Duration = duration
		}
		if severity != "" {
			res.Symptoms[i].Severity = severity
		}
		if loc, ok := locationBySymptom[res.Symptoms[i].Name]; ok {
			res.Symptoms[i].Location = loc
		}
	}

	return res
}

func (e *Extractor) matchDiseases(lower string) []DiseaseMatch {
	var matches []DiseaseMatch
	for _, d := range e.kb.Diseases() {
		best := DiseaseMatch{Disease: d.Name, Medication: d.Medication, Warning: d.Warning}
		for _, variant := range d.Variants {
			kw := strings.ToLower(variant)
			var conf float64
			switch {
			case lower == kw:
				conf = exactConfidence
			case matchesWholeWord(lower, kw):
				conf = boundaryBase + float64(len(kw))/float64(len(lower))*0.1
				if conf > boundaryCap {
					conf = boundaryCap
				}
			case strings.Contains(lower, kw):
				conf = substringConfidence
			}
			if conf > best.Confidence || (conf == best.Confidence && len(kw) > len(best.MatchedKeyword)) {
				best.Confidence = conf
				best.MatchedKeyword = kw
			}
		}
		if best.Confidence > keepThreshold {
			matches = append(matches, best)
		}
	}
	return matches
}

// pickPrimary returns the highest-confidence match, preferring the
// longer matched keyword on ties.
func pickPrimary(matches []DiseaseMatch) *DiseaseMatch {
	var primary *DiseaseMatch
	for i := range matches {
		m := &matches[i]
		if primary == nil ||
			m.Confidence > primary.Confidence ||
			(m.Confidence == primary.Confidence && len(m.MatchedKeyword) > len(primary.MatchedKeyword)) {
			primary = m
		}
	}
	return primary
}

func (e *Extractor) matchSymptoms(lower string) []Symptom {
	seen := make(map[string]bool)
	var symptoms []Symptom
	for _, term := range e.surfaceTerms {
		if !containsTerm(lower, term) {
			continue
		}
		canon, _ := e.kb.CanonicalSymptom(term)
		if seen[canon] {
			continue
		}
		seen[canon] = true
		symptoms = append(symptoms, Symptom{Name: canon, Confidence: surfaceConfidence})
	}
	return symptoms
}

// containsTerm uses whole-word matching for single words and substring
// matching for multi-word phrases.
func containsTerm(lower, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(term, " ") {
		return strings.Contains(lower, term)
	}
	return matchesWholeWord(lower, term)
}

// matchesWholeWord reports whether kw occurs in text bounded by
// non-letter runes. Go's \b is ASCII-only which breaks on Devanagari,
// so boundaries are checked manually.
func matchesWholeWord(text, kw string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		if boundaryAt(text, start, true) && boundaryAt(text, end, false) {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func boundaryAt(text string, pos int, before bool) bool {
	if before {
		if pos == 0 {
			return true
		}
		r := lastRune(text[:pos])
		return !isWordRune(r)
	}
	if pos >= len(text) {
		return true
	}
	r := firstRune(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r > 0x7F
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// extractDuration normalizes relative and numeric duration mentions to
// "<n> day(s)" / "<n> week(s)".
func extractDuration(lower string) string {
	if strings.Contains(lower, "kal se") || strings.Contains(lower, "since yesterday") {
		return "1 day"
	}
	if strings.Contains(lower, "parso se") {
		return "2 days"
	}
	m := durationRe.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	n, unit := m[1], m[2]
	switch unit {
	case "hafte", "haftey", "week", "weeks":
		if n == "1" {
			return "1 week"
		}
		return n + " weeks"
	default:
		if n == "1" {
			return "1 day"
		}
		return n + " days"
	}
}

func extractSeverityAdjective(lower string) string {
	for _, adj := range knowledge.SevereAdjectives {
		if matchesWholeWord(lower, strings.ToLower(adj)) {
			return "severe"
		}
	}
	for _, adj := range knowledge.MildAdjectives {
		if matchesWholeWord(lower, strings.ToLower(adj)) {
			return "mild"
		}
	}
	return ""
}
