// Package dialog holds per-session conversation state: what the patient
// told us, which symptoms are being tracked with their modifiers, and
// what has been ordered or prescribed so far.
package dialog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UserInfo is the patient profile collected across turns.
type UserInfo struct {
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Allergies      []string `json:"allergies"`
	MedicalHistory []string `json:"medical_history"`
}

// TrackedSymptom is one symptom accumulated across the session.
// Occurrences counts how many turns mentioned it.
type TrackedSymptom struct {
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	Severity      string    `json:"severity,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	Confidence    float64   `json:"confidence"`
	Occurrences   int       `json:"occurrences"`
	FirstReported time.Time `json:"first_reported"`
	LastReported  time.Time `json:"last_reported"`
}

// OrderedTest is a diagnostic test queued during the consult.
type OrderedTest struct {
	Name      string    `json:"name"`
	Reason    string    `json:"reason"`
	OrderedAt time.Time `json:"ordered_at"`
	Status    string    `json:"status"`
}

// PrescribedMedicine is one medicine handed out during the consult.
type PrescribedMedicine struct {
	Name         string    `json:"name"`
	Composition  string    `json:"composition,omitempty"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	Duration     string    `json:"duration"`
	Instructions string    `json:"instructions,omitempty"`
	Timing       string    `json:"timing,omitempty"`
	PrescribedAt time.Time `json:"prescribed_at"`
}

// TimelineEntry is one conversation turn.
type TimelineEntry struct {
	Role     string    `json:"role"`
	Text     string    `json:"text"`
	Language string    `json:"language"`
	At       time.Time `json:"at"`
}

// Context is the whole dialogue state for one session. All methods are
// safe for concurrent use.
type Context struct {
	mu sync.RWMutex

	SessionID string                     `json:"session_id"`
	UserInfo  UserInfo                   `json:"user_info"`
	Symptoms  map[string]*TrackedSymptom `json:"symptoms"`
	Tests     []OrderedTest              `json:"tests_ordered"`
	Medicines []PrescribedMedicine       `json:"medicines_given"`
	Timeline  []TimelineEntry            `json:"timeline"`
	StartedAt time.Time                  `json:"started_at"`
}

// NewContext creates an empty session context with a fresh ID.
func NewContext() *Context {
	return &Context{
		SessionID: uuid.NewString(),
		Symptoms:  make(map[string]*TrackedSymptom),
		StartedAt: time.Now(),
	}
}

// RecordTurn appends one turn to the timeline.
func (c *Context) RecordTurn(role, text, lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Timeline = append(c.Timeline, TimelineEntry{
		Role:     role,
		Text:     text,
		Language: lang,
		At:       time.Now(),
	})
}

// UpsertSymptom merges one extracted symptom into the tracked set. A
// repeat mention increments the occurrence counter and overwrites only
// the modifiers the new mention actually supplied.
func (c *Context) UpsertSymptom(name, location, severityLevel, duration string, confidence float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	existing, ok := c.Symptoms[name]
	if !ok {
		c.Symptoms[name] = &TrackedSymptom{
			Name:          name,
			Location:      location,
			Severity:      severityLevel,
			Duration:      duration,
			Confidence:    confidence,
			Occurrences:   1,
			FirstReported: now,
			LastReported:  now,
		}
		return
	}

	existing.Occurrences++
	existing.LastReported = now
	if location != "" {
		existing.Location = location
	}
	if severityLevel != "" {
		existing.Severity = severityLevel
	}
	if duration != "" {
		existing.Duration = duration
	}
	if confidence > existing.Confidence {
		existing.Confidence = confidence
	}
}

// AddOrderedTest queues a diagnostic test as pending.
func (c *Context) AddOrderedTest(name, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Tests = append(c.Tests, OrderedTest{
		Name:      name,
		Reason:    reason,
		OrderedAt: time.Now(),
		Status:    "pending",
	})
}

// AddMedicine records a prescribed medicine.
func (c *Context) AddMedicine(m PrescribedMedicine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m.PrescribedAt.IsZero() {
		m.PrescribedAt = time.Now()
	}
	c.Medicines = append(c.Medicines, m)
}

// SetUserInfo applies a partial profile update; zero values leave the
// stored field untouched.
func (c *Context) SetUserInfo(info UserInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if info.Name != "" {
		c.UserInfo.Name = info.Name
	}
	if info.Age > 0 {
		c.UserInfo.Age = info.Age
	}
	if info.Gender != "" {
		c.UserInfo.Gender = info.Gender
	}
	if len(info.Allergies) > 0 {
		c.UserInfo.Allergies = append(c.UserInfo.Allergies, info.Allergies...)
	}
	if len(info.MedicalHistory) > 0 {
		c.UserInfo.MedicalHistory = append(c.UserInfo.MedicalHistory, info.MedicalHistory...)
	}
}

// SummarizeSymptoms renders the tracked symptoms as one line for
// prompts and clinician handoff, e.g.
// "headache (head) - severe - duration: 2 days (mentioned 3 times)".
func (c *Context) SummarizeSymptoms() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.Symptoms) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.Symptoms))
	for _, s := range sortedSymptoms(c.Symptoms) {
		var b strings.Builder
		b.WriteString(s.Name)
		if s.Location != "" {
			fmt.Fprintf(&b, " (%s)", s.Location)
		}
		if s.Severity != "" {
			fmt.Fprintf(&b, " - %s", s.Severity)
		}
		if s.Duration != "" {
			fmt.Fprintf(&b, " - duration: %s", s.Duration)
		}
		if s.Occurrences > 1 {
			fmt.Fprintf(&b, " (mentioned %d times)", s.Occurrences)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "; ")
}

// Snapshot returns a copy of the tracked symptoms, most recent last.
func (c *Context) Snapshot() []TrackedSymptom {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]TrackedSymptom, 0, len(c.Symptoms))
	for _, s := range sortedSymptoms(c.Symptoms) {
		out = append(out, *s)
	}
	return out
}

// MedicinesGiven returns a copy of the prescription records.
func (c *Context) MedicinesGiven() []PrescribedMedicine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]PrescribedMedicine(nil), c.Medicines...)
}

// TestsOrdered returns a copy of the queued tests.
func (c *Context) TestsOrdered() []OrderedTest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]OrderedTest(nil), c.Tests...)
}

// Profile returns a copy of the collected patient profile.
func (c *Context) Profile() UserInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserInfo
}

// Reset clears all state and issues a new session ID.
func (c *Context) Reset() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SessionID = uuid.NewString()
	c.UserInfo = UserInfo{}
	c.Symptoms = make(map[string]*TrackedSymptom)
	c.Tests = nil
	c.Medicines = nil
	c.Timeline = nil
	c.StartedAt = time.Now()
	return c.SessionID
}

// Export serializes the full context as JSON.
func (c *Context) Export() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, err := json.Marshal(struct {
		SessionID string                     `json:"session_id"`
		UserInfo  UserInfo                   `json:"user_info"`
		Symptoms  map[string]*TrackedSymptom `json:"symptoms"`
		Tests     []OrderedTest              `json:"tests_ordered"`
		Medicines []PrescribedMedicine       `json:"medicines_given"`
		Timeline  []TimelineEntry            `json:"timeline"`
		StartedAt time.Time                  `json:"started_at"`
	}{c.SessionID, c.UserInfo, c.Symptoms, c.Tests, c.Medicines, c.Timeline, c.StartedAt})
	if err != nil {
		return nil, fmt.Errorf("export context: %w", err)
	}
	return data, nil
}

// Import restores a context previously produced by Export.
func Import(data []byte) (*Context, error) {
	var raw struct {
		SessionID string                     `json:"session_id"`
		UserInfo  UserInfo                   `json:"user_info"`
		Symptoms  map[string]*TrackedSymptom `json:"symptoms"`
		Tests     []OrderedTest              `json:"tests_ordered"`
		Medicines []PrescribedMedicine       `json:"medicines_given"`
		Timeline  []TimelineEntry            `json:"timeline"`
		StartedAt time.Time                  `json:"started_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("import context: %w", err)
	}
	if raw.SessionID == "" {
		return nil, fmt.Errorf("import context: missing session_id")
	}
	ctx := &Context{
		SessionID: raw.SessionID,
		UserInfo:  raw.UserInfo,
		Symptoms:  raw.Symptoms,
		Tests:     raw.Tests,
		Medicines: raw.Medicines,
		Timeline:  raw.Timeline,
		StartedAt: raw.StartedAt,
	}
	if ctx.Symptoms == nil {
		ctx.Symptoms = make(map[string]*TrackedSymptom)
	}
	return ctx, nil
}

func sortedSymptoms(m map[string]*TrackedSymptom) []*TrackedSymptom {
	out := make([]*TrackedSymptom, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FirstReported.Equal(out[j].FirstReported) {
			return out[i].FirstReported.Before(out[j].FirstReported)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
