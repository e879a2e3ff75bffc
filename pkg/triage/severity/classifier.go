// Package severity grades a message and its extracted symptoms into a
// severity level and an urgency hint for the response layer.
package severity

import (
	"strings"

	"ai-triage-be/pkg/triage/extract"
	"ai-triage-be/pkg/triage/knowledge"
)

// Severity levels, ordered.
const (
	Low      = "low"
	Moderate = "moderate"
	High     = "high"
)

// Urgency hints surfaced to the caller. Emergencies keep "high" here;
// the Emergency flag carries the escalation.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Assessment is the classifier verdict for one message.
type Assessment struct {
	Severity  string `json:"severity"`
	Urgency   string `json:"urgency"`
	Emergency bool   `json:"emergency"`
}

// Classifier checks messages against the severity keyword tiers.
type Classifier struct {
	kb *knowledge.Base
}

func New(kb *knowledge.Base) *Classifier {
	return &Classifier{kb: kb}
}

// Classify grades text plus the symptoms extracted from it. Red-flag
// phrases win outright and set the emergency flag; otherwise the urgent
// tier is checked first, then severe-tagged symptoms, then the moderate
// and low tiers.
func (c *Classifier) Classify(text string, symptoms []extract.Symptom) Assessment {
	lower := strings.ToLower(text)

	for _, flag := range c.kb.RedFlags() {
		if strings.Contains(lower, flag) {
			return Assessment{Severity: High, Urgency: UrgencyHigh, Emergency: true}
		}
	}
	for _, s := range symptoms {
		if s.Name == "chest pain" || s.Name == "breathing difficulty" {
			return Assessment{Severity: High, Urgency: UrgencyHigh, Emergency: true}
		}
	}

	if c.hit(lower, symptoms, "urgent") {
		return Assessment{Severity: High, Urgency: UrgencyHigh}
	}

	// A severe adjective on any extracted symptom bumps the verdict
	// ahead of the milder tiers, so "severe cough" does not grade low.
	for _, s := range symptoms {
		if s.Severity == "severe" {
			return Assessment{Severity: High, Urgency: UrgencyHigh}
		}
	}

	if c.hit(lower, symptoms, "moderate") {
		return Assessment{Severity: Moderate, Urgency: UrgencyMedium}
	}
	if c.hit(lower, symptoms, "low") {
		return Assessment{Severity: Low, Urgency: UrgencyLow}
	}
	if len(symptoms) > 0 {
		return Assessment{Severity: Moderate, Urgency: UrgencyMedium}
	}
	return Assessment{Severity: Low, Urgency: UrgencyLow}
}

func (c *Classifier) hit(lower string, symptoms []extract.Symptom, tier string) bool {
	for _, kw := range c.kb.SeverityKeywords(tier) {
		if strings.Contains(lower, kw) {
			return true
		}
		for _, s := range symptoms {
			if s.Name == kw {
				return true
			}
		}
	}
	return false
}
