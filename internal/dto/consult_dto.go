package dto

// TurnRequest is one patient message. SessionID empty means "start a
// new session"; LanguageHint overrides detection when supplied.
type TurnRequest struct {
	Text         string `json:"text" validate:"required"`
	SessionID    string `json:"session_id"`
	LanguageHint string `json:"language_hint"`
}

// MedicineDTO mirrors one prescribed medicine on the wire.
type MedicineDTO struct {
	Name         string `json:"name"`
	Composition  string `json:"composition,omitempty"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
	Timing       string `json:"timing,omitempty"`
}

// TestDTO mirrors one ordered diagnostic test on the wire.
type TestDTO struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

// TurnResponse is the engine's answer to one turn.
type TurnResponse struct {
	SessionID        string        `json:"session_id"`
	Language         string        `json:"language"`
	ResponseText     string        `json:"response_text"`
	FollowUpQuestion string        `json:"follow_up_question,omitempty"`
	Urgency          string        `json:"urgency"`
	Category         string        `json:"category"`
	Confidence       float64       `json:"confidence"`
	Severity         string        `json:"severity,omitempty"`
	Emergency        bool          `json:"emergency"`
	Medicines        []MedicineDTO `json:"medicines,omitempty"`
	Tests            []TestDTO     `json:"tests,omitempty"`
	MissingFields    []string      `json:"missing_fields,omitempty"`
}

// SessionExportResponse wraps a serialized session context.
type SessionExportResponse struct {
	SessionID string `json:"session_id"`
	Context   string `json:"context"`
}

// SessionImportRequest restores a previously exported context.
type SessionImportRequest struct {
	Context string `json:"context" validate:"required"`
}

// SessionResetResponse reports the fresh session ID after a reset.
type SessionResetResponse struct {
	SessionID string `json:"session_id"`
}

// SessionSummaryResponse is the clinician-facing session snapshot.
type SessionSummaryResponse struct {
	SessionID            string        `json:"session_id"`
	PatientName          string        `json:"patient_name,omitempty"`
	PatientAge           int           `json:"patient_age,omitempty"`
	SymptomSummary       string        `json:"symptom_summary"`
	Medicines            []MedicineDTO `json:"medicines,omitempty"`
	Tests                []TestDTO     `json:"tests,omitempty"`
	ReadyForPrescription bool          `json:"ready_for_prescription"`
	MissingFields        []string      `json:"missing_fields,omitempty"`
}
