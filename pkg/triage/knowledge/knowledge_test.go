package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiseaseTableIsWellFormed(t *testing.T) {
	kb := Load()
	require.NotEmpty(t, kb.Diseases())

	for _, d := range kb.Diseases() {
		assert.NotEmpty(t, d.Name, "disease name")
		assert.NotEmpty(t, d.Variants, "variants for %s", d.Name)
		assert.NotEmpty(t, d.Medication, "medication for %s", d.Name)
	}
}

func TestSurfaceTermsResolve(t *testing.T) {
	kb := Load()

	canon, ok := kb.CanonicalSymptom("bukhar")
	require.True(t, ok)
	assert.Equal(t, "fever", canon)

	canon, ok = kb.CanonicalSymptom("pet dard")
	require.True(t, ok)
	assert.Equal(t, "stomach pain", canon)

	_, ok = kb.CanonicalSymptom("notasymptom")
	assert.False(t, ok)
}

func TestTreatmentsHaveEnglishText(t *testing.T) {
	kb := Load()

	for term, canon := range kb.SurfaceTerms() {
		t.Run(term, func(t *testing.T) {
			if tr, ok := kb.TreatmentFor(canon); ok {
				assert.NotEmpty(t, tr.Advice["en"], "english advice for %s", canon)
				assert.NotEmpty(t, tr.FollowUp["en"], "english follow-up for %s", canon)
			}
		})
	}
}

func TestPatternsHaveEnglishResponses(t *testing.T) {
	kb := Load()
	require.NotEmpty(t, kb.Patterns())

	for _, p := range kb.Patterns() {
		assert.NotEmpty(t, p.Keywords, "keywords for %s", p.Symptom)
		assert.NotEmpty(t, p.Responses["en"], "english response for %s", p.Symptom)
		assert.NotEmpty(t, p.Urgency, "urgency for %s", p.Symptom)
		assert.NotEmpty(t, p.Category, "category for %s", p.Symptom)
	}
}

func TestSeverityTiers(t *testing.T) {
	kb := Load()

	for _, tier := range []string{"urgent", "moderate", "low"} {
		assert.NotEmpty(t, kb.SeverityKeywords(tier), "tier %s", tier)
	}
	assert.Empty(t, kb.SeverityKeywords("nonsense"))
	assert.NotEmpty(t, kb.RedFlags())
}

func TestLocalizedFallbacks(t *testing.T) {
	kb := Load()

	assert.NotEmpty(t, kb.Farewell("hi"))
	assert.Equal(t, kb.Farewell("en"), kb.Farewell("ta"))
	assert.Equal(t, kb.Generic("en"), kb.Generic("bn"))
	assert.NotEmpty(t, kb.EmergencyNotice("hi"))
	assert.Equal(t, kb.EmergencyNotice("en"), kb.EmergencyNotice("ur"))
}
