package cascade

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ai-triage-be/pkg/llm/groq"
	"ai-triage-be/pkg/triage/knowledge"
)

func newResponder(provider *groq.GroqProvider, timeout time.Duration) *Responder {
	if provider == nil {
		return NewResponder(knowledge.Load(), nil, timeout, nil)
	}
	return NewResponder(knowledge.Load(), provider, timeout, nil)
}

func stubServer(t *testing.T, handler http.HandlerFunc) *groq.GroqProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return groq.NewGroqProvider(srv.URL, "test-key", "test-model", 2*time.Second)
}

func TestGoodbyeShortCircuits(t *testing.T) {
	// a reachable remote tier must never see a farewell
	provider := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("remote tier called on goodbye")
	})
	r := newResponder(provider, time.Second)

	for _, text := range []string{"bye", "Thanks!", "dhanyawad", "धन्यवाद", "ok bye"} {
		got := r.Generate(context.Background(), text, "en", "")
		assert.Equal(t, SourcePattern, got.Source)
		assert.Equal(t, "goodbye", got.Category)
		assert.Empty(t, got.FollowUp)
		assert.Equal(t, 0.95, got.Confidence)
		assert.NotEmpty(t, got.Text)
	}
}

func TestGoodbyeRequiresWholeMessage(t *testing.T) {
	r := newResponder(nil, time.Second)

	got := r.Generate(context.Background(), "thanks but I still have fever", "en", "")
	assert.NotEqual(t, "goodbye", got.Category)
}

func TestRemoteSuccess(t *testing.T) {
	provider := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Please rest and drink fluids."}}]}`))
	})
	r := newResponder(provider, time.Second)

	got := r.Generate(context.Background(), "I feel unwell", "en", "fever - duration: 2 days")
	assert.Equal(t, SourceRemote, got.Source)
	assert.Equal(t, "Please rest and drink fluids.", got.Text)
	assert.Equal(t, 0.92, got.Confidence)
}

func TestRemoteServerErrorFallsToPattern(t *testing.T) {
	provider := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})
	r := newResponder(provider, time.Second)

	got := r.Generate(context.Background(), "mujhe bukhar hai", "hi", "")
	assert.Equal(t, SourcePattern, got.Source)
	assert.Equal(t, "fever", got.Category)
	assert.Equal(t, "medium", got.Urgency)
	assert.NotEmpty(t, got.FollowUp)
}

func TestRemoteTimeoutFallsToPattern(t *testing.T) {
	provider := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"too late"}}]}`))
	})
	r := newResponder(provider, 100*time.Millisecond)

	got := r.Generate(context.Background(), "mujhe bukhar hai", "hi", "")
	assert.Equal(t, SourcePattern, got.Source)
	assert.Equal(t, "fever", got.Category)
}

func TestRemoteMalformedBodyFallsToPattern(t *testing.T) {
	provider := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})
	r := newResponder(provider, time.Second)

	got := r.Generate(context.Background(), "mujhe bukhar hai", "hi", "")
	assert.Equal(t, SourcePattern, got.Source)
}

func TestRemoteEmptyChoicesFallsToPattern(t *testing.T) {
	provider := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	r := newResponder(provider, time.Second)

	got := r.Generate(context.Background(), "mujhe bukhar hai", "hi", "")
	assert.Equal(t, SourcePattern, got.Source)
}

func TestPatternConfidenceScalesWithHits(t *testing.T) {
	r := newResponder(nil, time.Second)

	got := r.Generate(context.Background(), "mujhe bukhar hai", "hi", "")
	assert.Equal(t, SourcePattern, got.Source)
	assert.InDelta(t, 0.3, got.Confidence, 1e-9)

	got = r.Generate(context.Background(), "fever bukhar high temperature", "en", "")
	assert.Equal(t, SourcePattern, got.Source)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.LessOrEqual(t, got.Confidence, 0.9)
}

func TestPatternLocalization(t *testing.T) {
	r := newResponder(nil, time.Second)

	got := r.Generate(context.Background(), "mujhe bukhar hai", "hi", "")
	assert.Contains(t, got.Text, "बुखार")

	// a language with no localized text falls back to English
	got = r.Generate(context.Background(), "fever", "ta", "")
	assert.Contains(t, got.Text, "fever")
}

func TestGenericFallback(t *testing.T) {
	r := newResponder(nil, time.Second)

	got := r.Generate(context.Background(), "namaste", "hi", "")
	assert.Equal(t, SourceGeneric, got.Source)
	assert.Equal(t, 0.8, got.Confidence)
	assert.NotEmpty(t, got.Text)
}

func TestEmergencyPatternsCarryHighUrgency(t *testing.T) {
	r := newResponder(nil, time.Second)

	got := r.Generate(context.Background(), "I have chest pain and can't breathe", "en", "")
	assert.Equal(t, SourcePattern, got.Source)
	assert.Equal(t, "high", got.Urgency)
	assert.Equal(t, "emergency", got.Category)
}
