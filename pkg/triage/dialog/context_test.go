package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSymptomIncrementsWithoutDuplicating(t *testing.T) {
	ctx := NewContext()

	ctx.UpsertSymptom("fever", "", "", "3 days", 0.9)
	ctx.UpsertSymptom("fever", "", "", "", 0.85)
	ctx.UpsertSymptom("fever", "", "severe", "", 0.9)

	snap := ctx.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 3, snap[0].Occurrences)
}

func TestUpsertSymptomOverwritesOnlySuppliedModifiers(t *testing.T) {
	ctx := NewContext()

	ctx.UpsertSymptom("headache", "head", "mild", "2 days", 0.9)
	ctx.UpsertSymptom("headache", "", "severe", "", 0.9)

	snap := ctx.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "head", snap[0].Location)
	assert.Equal(t, "severe", snap[0].Severity)
	assert.Equal(t, "2 days", snap[0].Duration)
}

func TestUpsertSymptomKeepsHighestConfidence(t *testing.T) {
	ctx := NewContext()

	ctx.UpsertSymptom("cough", "", "", "", 0.9)
	ctx.UpsertSymptom("cough", "", "", "", 0.75)

	snap := ctx.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 0.9, snap[0].Confidence)
}

func TestSummarizeSymptoms(t *testing.T) {
	ctx := NewContext()
	assert.Empty(t, ctx.SummarizeSymptoms())

	ctx.UpsertSymptom("headache", "head", "severe", "2 days", 0.9)
	ctx.UpsertSymptom("headache", "", "", "", 0.9)
	ctx.UpsertSymptom("headache", "", "", "", 0.9)

	got := ctx.SummarizeSymptoms()
	assert.Equal(t, "headache (head) - severe - duration: 2 days (mentioned 3 times)", got)

	ctx.UpsertSymptom("fever", "", "", "3 days", 0.9)
	got = ctx.SummarizeSymptoms()
	assert.Equal(t, "headache (head) - severe - duration: 2 days (mentioned 3 times); fever - duration: 3 days", got)
}

func TestAssessCompleteness(t *testing.T) {
	ctx := NewContext()

	got := ctx.AssessCompleteness()
	assert.False(t, got.ReadyForPrescription)
	assert.ElementsMatch(t, []string{"name", "age", "symptoms"}, got.MissingFields)

	ctx.SetUserInfo(UserInfo{Name: "Ravi"})
	ctx.UpsertSymptom("fever", "", "", "", 0.9)
	got = ctx.AssessCompleteness()
	assert.False(t, got.ReadyForPrescription)
	assert.ElementsMatch(t, []string{"age", "symptom details"}, got.MissingFields)

	ctx.SetUserInfo(UserInfo{Age: 30})
	ctx.UpsertSymptom("fever", "", "", "3 days", 0.9)
	got = ctx.AssessCompleteness()
	assert.True(t, got.ReadyForPrescription)
	assert.Empty(t, got.MissingFields)
}

func TestMissingAgeBlocksPrescription(t *testing.T) {
	ctx := NewContext()
	ctx.SetUserInfo(UserInfo{Name: "Priya"})
	ctx.UpsertSymptom("fever", "", "", "3 days", 0.9)

	got := ctx.AssessCompleteness()
	assert.False(t, got.ReadyForPrescription)
	assert.Contains(t, got.MissingFields, "age")
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := NewContext()
	ctx.SetUserInfo(UserInfo{Name: "Ravi", Age: 30, Allergies: []string{"penicillin"}})
	ctx.UpsertSymptom("fever", "", "mild", "3 days", 0.9)
	ctx.AddOrderedTest("Complete Blood Count (CBC)", "fever workup")
	ctx.AddMedicine(PrescribedMedicine{Name: "Paracetamol", Dosage: "500mg", Frequency: "3 times daily", Duration: "3 days"})
	ctx.RecordTurn("patient", "mujhe bukhar hai", "hi")

	data, err := ctx.Export()
	require.NoError(t, err)

	restored, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, ctx.SessionID, restored.SessionID)
	assert.Equal(t, "Ravi", restored.Profile().Name)
	assert.Equal(t, 30, restored.Profile().Age)

	snap := restored.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "fever", snap[0].Name)
	assert.Equal(t, "3 days", snap[0].Duration)

	require.Len(t, restored.TestsOrdered(), 1)
	assert.Equal(t, "pending", restored.TestsOrdered()[0].Status)
	require.Len(t, restored.MedicinesGiven(), 1)
	assert.Equal(t, "Paracetamol", restored.MedicinesGiven()[0].Name)
}

func TestImportRejectsMissingSessionID(t *testing.T) {
	_, err := Import([]byte(`{"user_info":{"name":"x"}}`))
	assert.Error(t, err)

	_, err = Import([]byte(`not json`))
	assert.Error(t, err)
}

func TestResetIssuesNewSessionID(t *testing.T) {
	ctx := NewContext()
	old := ctx.SessionID
	ctx.SetUserInfo(UserInfo{Name: "Ravi", Age: 30})
	ctx.UpsertSymptom("fever", "", "", "3 days", 0.9)
	ctx.AddMedicine(PrescribedMedicine{Name: "Paracetamol"})

	fresh := ctx.Reset()
	assert.NotEqual(t, old, fresh)
	assert.Equal(t, fresh, ctx.SessionID)
	assert.Empty(t, ctx.Snapshot())
	assert.Empty(t, ctx.MedicinesGiven())
	assert.Empty(t, ctx.Profile().Name)
}
