// Package cascade produces the reply for a turn through tiered
// fallback: remote LLM first, knowledge-base patterns second, a generic
// prompt for more detail last. Generate never fails; a tier that cannot
// answer passes the turn down.
package cascade

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-triage-be/pkg/llm"
	"ai-triage-be/pkg/triage/knowledge"
)

// Response source tiers.
const (
	SourceRemote  = "remote"
	SourcePattern = "pattern"
	SourceGeneric = "generic"
)

// Response is the cascade verdict for one turn.
type Response struct {
	Text       string  `json:"text"`
	FollowUp   string  `json:"follow_up,omitempty"`
	Urgency    string  `json:"urgency"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// Responder runs the tiered fallback. The provider may be nil, in which
// case the remote tier is skipped entirely.
type Responder struct {
	kb            *knowledge.Base
	provider      llm.LLMProvider
	remoteTimeout time.Duration
	logger        *log.Logger
}

func NewResponder(kb *knowledge.Base, provider llm.LLMProvider, remoteTimeout time.Duration, logger *log.Logger) *Responder {
	if remoteTimeout <= 0 {
		remoteTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Responder{
		kb:            kb,
		provider:      provider,
		remoteTimeout: remoteTimeout,
		logger:        logger,
	}
}

// Generate answers one turn. summary is the session symptom summary fed
// to the remote tier for context; it may be empty on the first turn.
func (r *Responder) Generate(ctx context.Context, text, lang, summary string) Response {
	if resp, ok := r.goodbye(text, lang); ok {
		return resp
	}

	if r.provider != nil {
		if resp, ok := r.remote(ctx, text, lang, summary); ok {
			return resp
		}
	}

	if resp, ok := r.pattern(text, lang); ok {
		return resp
	}

	return r.generic(lang)
}

// goodbye short-circuits farewell messages: reply and ask nothing more.
func (r *Responder) goodbye(text, lang string) (Response, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	lower = strings.Trim(lower, ".!?")
	for _, word := range knowledge.GoodbyeWords {
		if lower == word {
			return Response{
				Text:       r.kb.Farewell(lang),
				FollowUp:   "",
				Urgency:    "low",
				Category:   "goodbye",
				Confidence: 0.95,
				Source:     SourcePattern,
			}, true
		}
	}
	return Response{}, false
}

// remote asks the LLM provider within a bounded timeout. Any failure
// (network, non-2xx, timeout, unusable reply) is logged and swallowed
// so the next tier can take over.
func (r *Responder) remote(ctx context.Context, text, lang, summary string) (Response, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.remoteTimeout)
	defer cancel()

	prompt := r.buildPrompt(text, lang, summary)
	reply, err := r.provider.Generate(callCtx, prompt, llm.WithTemperature(0.3), llm.WithMaxTokens(300))
	if err != nil {
		r.logger.Printf("[WARN] Remote tier failed, falling back: %v", err)
		return Response{}, false
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		r.logger.Printf("[WARN] Remote tier returned empty reply, falling back")
		return Response{}, false
	}

	return Response{
		Text:       reply,
		Urgency:    "medium",
		Category:   "general",
		Confidence: 0.92,
		Source:     SourceRemote,
	}, true
}

func (r *Responder) buildPrompt(text, lang, summary string) string {
	var b strings.Builder
	b.WriteString("You are a careful telehealth assistant for Indian patients. ")
	b.WriteString("Reply briefly and practically, in the patient's language.\n")
	fmt.Fprintf(&b, "Patient language: %s\n", lang)
	if summary != "" {
		fmt.Fprintf(&b, "Known symptoms so far: %s\n", summary)
	}
	fmt.Fprintf(&b, "Patient says: %s\n", text)
	b.WriteString("Give short advice and one follow-up question. Never diagnose definitively; recommend a doctor for anything serious.")
	return b.String()
}

// pattern scores each knowledge-base pattern by keyword hits and picks
// the best one. Confidence scales with the hit count, capped at 0.9.
func (r *Responder) pattern(text, lang string) (Response, bool) {
	lower := strings.ToLower(text)

	var best *knowledge.Pattern
	maxScore := 0
	for i := range r.kb.Patterns() {
		p := &r.kb.Patterns()[i]
		score := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = p
		}
	}

	if best == nil || maxScore == 0 {
		return Response{}, false
	}

	conf := float64(maxScore) * 0.3
	if conf > 0.9 {
		conf = 0.9
	}

	return Response{
		Text:       localized(best.Responses, lang),
		FollowUp:   localized(best.FollowUps, lang),
		Urgency:    best.Urgency,
		Category:   best.Category,
		Confidence: conf,
		Source:     SourcePattern,
	}, true
}

func (r *Responder) generic(lang string) Response {
	return Response{
		Text:       r.kb.Generic(lang),
		Urgency:    "medium",
		Category:   "general",
		Confidence: 0.8,
		Source:     SourceGeneric,
	}
}

func localized(m map[string]string, lang string) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m["en"]
}
