package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-triage-be/pkg/triage/knowledge"
)

func newExtractor() *Extractor {
	return New(knowledge.Load())
}

func diseaseByName(t *testing.T, res Result, name string) DiseaseMatch {
	t.Helper()
	for _, d := range res.Diseases {
		if d.Disease == name {
			return d
		}
	}
	t.Fatalf("disease %q not found in %v", name, res.Diseases)
	return DiseaseMatch{}
}

func TestExactDiseaseMatch(t *testing.T) {
	res := newExtractor().Extract("malaria", "en")

	require.NotNil(t, res.Primary)
	assert.Equal(t, "malaria", res.Primary.Disease)
	assert.Equal(t, 0.98, res.Primary.Confidence)
}

func TestWordBoundaryConfidenceRange(t *testing.T) {
	res := newExtractor().Extract("i think i might have dengue since my trip", "en")

	m := diseaseByName(t, res, "dengue")
	assert.Greater(t, m.Confidence, 0.85)
	assert.Less(t, m.Confidence, 0.95)
}

func TestLongerKeywordRaisesBoundaryConfidence(t *testing.T) {
	e := newExtractor()
	short := diseaseByName(t, e.Extract("possible dengue infection here", "en"), "dengue")
	long := diseaseByName(t, e.Extract("haddi tod bukhar since monday", "en"), "dengue")

	assert.Greater(t, long.Confidence, short.Confidence)
}

func TestSubstringMatch(t *testing.T) {
	// "tb" embedded in a larger token only counts as a substring hit
	res := newExtractor().Extract("suspected tbinfection", "en")

	m := diseaseByName(t, res, "tuberculosis")
	assert.Equal(t, 0.75, m.Confidence)
}

func TestPrimaryPrefersHigherConfidence(t *testing.T) {
	res := newExtractor().Extract("bukhar", "hi")

	require.NotNil(t, res.Primary)
	assert.Equal(t, "fever", res.Primary.Disease)
	assert.Equal(t, 0.98, res.Primary.Confidence)
}

func TestPrimaryTieBreaksOnLongerKeyword(t *testing.T) {
	// "tb" and "khansi" both land in the substring tier at 0.75;
	// the longer matched keyword should win
	res := newExtractor().Extract("tbkhansi", "hi")

	require.NotNil(t, res.Primary)
	assert.Equal(t, "cough", res.Primary.Disease)
	assert.Equal(t, "khansi", res.Primary.MatchedKeyword)
}

func TestNoMatchYieldsNoPrimary(t *testing.T) {
	res := newExtractor().Extract("hello how are you", "en")
	assert.Nil(t, res.Primary)
	assert.Empty(t, res.Diseases)
}

func TestSymptomSurfaceMapping(t *testing.T) {
	res := newExtractor().Extract("mujhe pet dard aur ulti ho rahi hai", "hi")

	names := map[string]float64{}
	for _, s := range res.Symptoms {
		names[s.Name] = s.Confidence
	}
	assert.Equal(t, 0.90, names["stomach pain"])
	assert.Equal(t, 0.90, names["vomiting"])
}

func TestMultiWordPhraseWinsOverComponents(t *testing.T) {
	res := newExtractor().Extract("pet dard ho raha hai", "hi")

	for _, s := range res.Symptoms {
		assert.NotEqual(t, "stomach", s.Name)
	}
	require.NotEmpty(t, res.Symptoms)
	assert.Equal(t, "stomach pain", res.Symptoms[0].Name)
	assert.Equal(t, "abdomen", res.Symptoms[0].Location)
}

func TestDurationExtraction(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"mujhe bukhar hai 3 din se", "3 days"},
		{"fever since 1 day", "1 day"},
		{"khansi 2 weeks se hai", "2 weeks"},
		{"bukhar kal se hai", "1 day"},
		{"pet dard parso se", "2 days"},
	}

	e := newExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := e.Extract(tt.text, "hi")
			require.NotEmpty(t, res.Symptoms)
			assert.Equal(t, tt.want, res.Symptoms[0].Duration)
		})
	}
}

func TestSeverityAdjectives(t *testing.T) {
	e := newExtractor()

	res := e.Extract("bahut tez sir dard hai", "hi")
	require.NotEmpty(t, res.Symptoms)
	assert.Equal(t, "severe", res.Symptoms[0].Severity)

	res = e.Extract("thoda sa bukhar hai", "hi")
	require.NotEmpty(t, res.Symptoms)
	assert.Equal(t, "mild", res.Symptoms[0].Severity)

	res = e.Extract("bukhar hai", "hi")
	require.NotEmpty(t, res.Symptoms)
	assert.Empty(t, res.Symptoms[0].Severity)
}

func TestHindiFeverMessageEndToEnd(t *testing.T) {
	res := newExtractor().Extract("mujhe bukhar hai 3 din se", "hi")

	require.NotEmpty(t, res.Symptoms)
	assert.Equal(t, "fever", res.Symptoms[0].Name)
	assert.Equal(t, "3 days", res.Symptoms[0].Duration)
}

func TestEmptyInput(t *testing.T) {
	res := newExtractor().Extract("   ", "en")
	assert.Empty(t, res.Symptoms)
	assert.Empty(t, res.Diseases)
	assert.Nil(t, res.Primary)
}
