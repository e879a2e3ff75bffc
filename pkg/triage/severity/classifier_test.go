package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-triage-be/pkg/triage/extract"
	"ai-triage-be/pkg/triage/knowledge"
)

func newClassifier() *Classifier {
	return New(knowledge.Load())
}

func TestRedFlagsForceEmergency(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"chest pain and breathlessness", "I have chest pain and can't breathe"},
		{"hindi chest pain", "seene me dard ho raha hai"},
		{"unconscious", "my father is unconscious"},
		{"romanized behosh", "wo behosh ho gaya"},
		{"bleeding", "there is severe bleeding from the wound"},
	}

	c := newClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, nil)
			assert.Equal(t, High, got.Severity)
			assert.Equal(t, UrgencyHigh, got.Urgency)
			assert.True(t, got.Emergency)
		})
	}
}

// Urgency is an enumerated hint; emergencies escalate via the flag, not
// a value outside the range.
func TestUrgencyStaysInRange(t *testing.T) {
	c := newClassifier()

	for _, text := range []string{
		"I have chest pain and can't breathe",
		"mujhe bukhar hai",
		"sardi hai",
		"hello",
	} {
		got := c.Classify(text, nil)
		assert.Contains(t, []string{UrgencyLow, UrgencyMedium, UrgencyHigh}, got.Urgency, text)
	}
}

func TestEmergencySymptomNameWithoutPhrase(t *testing.T) {
	// the message itself has no red-flag phrase but extraction already
	// resolved a surface term to an emergency symptom
	got := newClassifier().Classify("chati me dard hai", []extract.Symptom{
		{Name: "chest pain", Confidence: 0.9},
	})

	assert.Equal(t, High, got.Severity)
	assert.Equal(t, UrgencyHigh, got.Urgency)
	assert.True(t, got.Emergency)
}

func TestTierOrdering(t *testing.T) {
	c := newClassifier()

	got := c.Classify("lagatar dard aur tez bukhar", nil)
	assert.Equal(t, Moderate, got.Severity)
	assert.Equal(t, UrgencyMedium, got.Urgency)
	assert.False(t, got.Emergency)

	got = c.Classify("sardi aur chheenk aa rahi hai", nil)
	assert.Equal(t, Low, got.Severity)
	assert.Equal(t, UrgencyLow, got.Urgency)

	// moderate keyword present alongside low keyword, moderate wins
	got = c.Classify("bukhar aur sardi dono hai", nil)
	assert.Equal(t, Moderate, got.Severity)
}

func TestSevereAdjectiveBumpsVerdict(t *testing.T) {
	got := newClassifier().Classify("kamar me taklif hai", []extract.Symptom{
		{Name: "back pain", Confidence: 0.9, Severity: "severe"},
	})

	assert.Equal(t, High, got.Severity)
	assert.Equal(t, UrgencyHigh, got.Urgency)
	assert.False(t, got.Emergency)
}

func TestSevereAdjectiveOutranksMilderTiers(t *testing.T) {
	c := newClassifier()

	// "cough" sits in the low tier but the severe tag wins
	got := c.Classify("bahut tez khansi ho rahi hai", []extract.Symptom{
		{Name: "cough", Confidence: 0.9, Severity: "severe"},
	})
	assert.Equal(t, High, got.Severity)
	assert.Equal(t, UrgencyHigh, got.Urgency)

	// same for the moderate tier
	got = c.Classify("severe fever", []extract.Symptom{
		{Name: "fever", Confidence: 0.9, Severity: "severe"},
	})
	assert.Equal(t, High, got.Severity)
}

func TestSymptomsWithoutKeywordsAreModerate(t *testing.T) {
	got := newClassifier().Classify("kamar me dikkat hai", []extract.Symptom{
		{Name: "back pain", Confidence: 0.9},
	})

	assert.Equal(t, Moderate, got.Severity)
	assert.Equal(t, UrgencyMedium, got.Urgency)
}

func TestNoFindingsAreLow(t *testing.T) {
	got := newClassifier().Classify("hello doctor", nil)

	assert.Equal(t, Low, got.Severity)
	assert.Equal(t, UrgencyLow, got.Urgency)
	assert.False(t, got.Emergency)
}
