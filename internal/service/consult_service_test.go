package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-triage-be/internal/dto"
	"ai-triage-be/internal/pkg/logger"
	"ai-triage-be/internal/repository/memory"
	"ai-triage-be/pkg/events"
	"ai-triage-be/pkg/triage/cascade"
	"ai-triage-be/pkg/triage/extract"
	"ai-triage-be/pkg/triage/knowledge"
	"ai-triage-be/pkg/triage/prescribe"
	"ai-triage-be/pkg/triage/severity"
)

func newTestService(t *testing.T) (IConsultService, *events.Bus) {
	t.Helper()

	kb := knowledge.Load()
	bus := events.NewBus()
	t.Cleanup(func() { bus.Close() })

	svc := NewConsultService(
		memory.NewSessionRepository(time.Hour),
		nil,
		kb,
		extract.New(kb),
		severity.New(kb),
		cascade.NewResponder(kb, nil, time.Second, nil),
		prescribe.New(kb),
		bus,
		logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")),
	)
	return svc, bus
}

func TestTurnHindiFever(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{Text: "mujhe bukhar hai 3 din se"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, "hi", out.Language)
	assert.Equal(t, "fever", out.Category)
	assert.Equal(t, "medium", out.Urgency)
	assert.Equal(t, severity.Moderate, out.Severity)
	assert.False(t, out.Emergency)
	assert.Contains(t, out.ResponseText, "बुखार")
	assert.Contains(t, out.MissingFields, "name")
	assert.Contains(t, out.MissingFields, "age")

	summary, err := svc.SessionSummary(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.Contains(t, summary.SymptomSummary, "fever")
	assert.Contains(t, summary.SymptomSummary, "3 days")
}

func TestTurnEmergency(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{Text: "I have chest pain and can't breathe"})
	require.NoError(t, err)

	assert.True(t, out.Emergency)
	assert.Equal(t, severity.UrgencyHigh, out.Urgency)
	assert.Equal(t, "emergency", out.Category)
	assert.Equal(t, severity.High, out.Severity)
	assert.Contains(t, out.ResponseText, "urgent")
	// urgency stays enumerated even on red-flag turns
	assert.Contains(t, []string{"low", "medium", "high"}, out.Urgency)
}

func TestEmergencyWithoutSymptomAdvice(t *testing.T) {
	svc, _ := newTestService(t)

	// red flag from text alone, no chest/breathing symptom extracted
	out, err := svc.Turn(context.Background(), &dto.TurnRequest{Text: "my father is unconscious"})
	require.NoError(t, err)

	assert.True(t, out.Emergency)
	assert.Equal(t, "emergency", out.Category)
	assert.Equal(t, severity.UrgencyHigh, out.Urgency)
	assert.Contains(t, out.ResponseText, "hospital")
	assert.NotContains(t, out.ResponseText, "Chest pain")
}

func TestEmergencyEventPublished(t *testing.T) {
	svc, bus := newTestService(t)

	received := make(chan events.Envelope, 1)
	require.NoError(t, bus.Subscribe(events.TypeEmergencyDetected, func(env events.Envelope) {
		received <- env
	}))

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{Text: "seene me dard ho raha hai"})
	require.NoError(t, err)
	require.True(t, out.Emergency)

	select {
	case env := <-received:
		assert.Equal(t, events.TypeEmergencyDetected, env.Type)
		assert.Equal(t, out.SessionID, env.Data["session_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("emergency event not delivered")
	}
}

func TestPrescriptionIssuedOnceWhenReady(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Turn(ctx, &dto.TurnRequest{Text: "my name is Ravi and I am 30 years old"})
	require.NoError(t, err)
	assert.Empty(t, first.Medicines)

	second, err := svc.Turn(ctx, &dto.TurnRequest{
		Text:      "I have fever since 3 days",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Empty(t, second.MissingFields)
	require.NotEmpty(t, second.Medicines)
	assert.Equal(t, "Paracetamol", second.Medicines[0].Name)
	require.NotEmpty(t, second.Tests)
	assert.Equal(t, "pending", second.Tests[0].Status)

	third, err := svc.Turn(ctx, &dto.TurnRequest{
		Text:      "bukhar abhi bhi hai",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)
	assert.Empty(t, third.Medicines)

	summary, err := svc.SessionSummary(ctx, first.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", summary.PatientName)
	assert.Equal(t, 30, summary.PatientAge)

	count := 0
	for _, m := range summary.Medicines {
		if m.Name == "Paracetamol" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMissingAgeBlocksPrescription(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{
		Text: "my name is Priya and I have fever since 3 days",
	})
	require.NoError(t, err)

	assert.Contains(t, out.MissingFields, "age")
	assert.Empty(t, out.Medicines)

	summary, err := svc.SessionSummary(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.False(t, summary.ReadyForPrescription)
}

func TestLanguageHint(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.Turn(ctx, &dto.TurnRequest{Text: "I have fever", LanguageHint: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", out.Language)
	assert.Contains(t, out.ResponseText, "बुखार")

	out, err = svc.Turn(ctx, &dto.TurnRequest{Text: "I have fever", LanguageHint: "xx"})
	require.NoError(t, err)
	assert.Equal(t, "en", out.Language)
}

func TestTurnNeverFails(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{Text: "asdkjh qwerty zxcvb"})
	require.NoError(t, err)
	assert.Equal(t, "general", out.Category)
	assert.Equal(t, 0.8, out.Confidence)
	assert.NotEmpty(t, out.ResponseText)
}

func TestUnknownSessionStartsFresh(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{
		Text:      "I have fever",
		SessionID: "no-such-session",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "no-such-session", out.SessionID)
	assert.NotEmpty(t, out.SessionID)
}

func TestGoodbyeSkipsQuestions(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Turn(context.Background(), &dto.TurnRequest{Text: "thank you"})
	require.NoError(t, err)
	assert.Equal(t, "goodbye", out.Category)
	assert.Empty(t, out.FollowUpQuestion)
	assert.Empty(t, out.Medicines)
}

func TestSessionExportImportReset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.Turn(ctx, &dto.TurnRequest{Text: "my name is Ravi, I am 30 years old, fever since 2 days"})
	require.NoError(t, err)

	export, err := svc.ExportSession(ctx, out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, export.SessionID)
	assert.NotEmpty(t, export.Context)

	imported, err := svc.ImportSession(ctx, &dto.SessionImportRequest{Context: export.Context})
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, imported.SessionID)

	summary, err := svc.SessionSummary(ctx, imported.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", summary.PatientName)

	reset, err := svc.ResetSession(ctx, out.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, out.SessionID, reset.SessionID)

	_, err = svc.SessionSummary(ctx, out.SessionID)
	assert.Error(t, err)
}

func TestImportRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ImportSession(context.Background(), &dto.SessionImportRequest{Context: "not json"})
	assert.Error(t, err)

	_, err = svc.ExportSession(context.Background(), "missing")
	assert.Error(t, err)

	_, err = svc.ResetSession(context.Background(), "missing")
	assert.Error(t, err)
}
