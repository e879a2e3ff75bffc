package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"time"

	"ai-triage-be/internal/dto"
	"ai-triage-be/internal/entity"
	"ai-triage-be/internal/pkg/logger"
	"ai-triage-be/internal/repository/contract"
	"ai-triage-be/internal/repository/implementation"
	"ai-triage-be/pkg/events"
	"ai-triage-be/pkg/triage/cascade"
	"ai-triage-be/pkg/triage/dialog"
	"ai-triage-be/pkg/triage/extract"
	"ai-triage-be/pkg/triage/knowledge"
	"ai-triage-be/pkg/triage/language"
	"ai-triage-be/pkg/triage/prescribe"
	"ai-triage-be/pkg/triage/severity"

	"github.com/gofiber/fiber/v2"
)

type IConsultService interface {
	Turn(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error)
	SessionSummary(ctx context.Context, sessionID string) (*dto.SessionSummaryResponse, error)
	ExportSession(ctx context.Context, sessionID string) (*dto.SessionExportResponse, error)
	ImportSession(ctx context.Context, req *dto.SessionImportRequest) (*dto.SessionResetResponse, error)
	ResetSession(ctx context.Context, sessionID string) (*dto.SessionResetResponse, error)
}

type consultService struct {
	sessionRepo contract.ISessionRepository
	transcripts implementation.ITranscriptRepository // nil when no DB configured
	kb          *knowledge.Base
	extractor   *extract.Extractor
	classifier  *severity.Classifier
	responder   *cascade.Responder
	prescriber  *prescribe.Prescriber
	bus         *events.Bus
	logger      logger.ILogger
}

func NewConsultService(
	sessionRepo contract.ISessionRepository,
	transcripts implementation.ITranscriptRepository,
	kb *knowledge.Base,
	extractor *extract.Extractor,
	classifier *severity.Classifier,
	responder *cascade.Responder,
	prescriber *prescribe.Prescriber,
	bus *events.Bus,
	sysLogger logger.ILogger,
) IConsultService {
	return &consultService{
		sessionRepo: sessionRepo,
		transcripts: transcripts,
		kb:          kb,
		extractor:   extractor,
		classifier:  classifier,
		responder:   responder,
		prescriber:  prescriber,
		bus:         bus,
		logger:      sysLogger,
	}
}

var (
	nameEnRe = regexp.MustCompile(`(?i)my name is\s+([\p{L}]+)`)
	nameHiRe = regexp.MustCompile(`(?i)mera naam\s+([\p{L}]+)`)
	ageRe    = regexp.MustCompile(`(?i)(\d{1,3})\s*(saal|sal|years?|yrs?|year old)`)
)

// Turn runs the whole pipeline for one patient message. It has no fatal
// path: every internal failure degrades to a lower tier and the patient
// always gets an answer.
func (s *consultService) Turn(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error) {
	session := s.loadOrCreate(req.SessionID)

	// 1. Language: explicit hint wins, otherwise detect
	lang := req.LanguageHint
	if lang == "" || !language.Known(lang) {
		lang = language.Detect(req.Text)
	}

	session.RecordTurn("patient", req.Text, lang)

	// 2. Profile capture from free text
	s.captureProfile(session, req.Text)

	// 3. Extraction
	extraction := s.extractor.Extract(req.Text, lang)
	for _, sym := range extraction.Symptoms {
		session.UpsertSymptom(sym.Name, sym.Location, sym.Severity, sym.Duration, sym.Confidence)
	}

	// 4. Severity
	assessment := s.classifier.Classify(req.Text, extraction.Symptoms)

	// 5. Completeness gate
	completeness := session.AssessCompleteness()

	// 6. Response cascade
	summary := session.SummarizeSymptoms()
	resp := s.responder.Generate(ctx, req.Text, lang, summary)

	// Emergency verdict overrides whatever tier answered. Urgency stays
	// within the low/medium/high range; the Emergency flag carries the
	// escalation.
	if assessment.Emergency {
		resp.Urgency = severity.UrgencyHigh
		resp.Category = "emergency"
		resp.Text = s.kb.EmergencyNotice(lang)
		if flag := primaryRedFlag(extraction.Symptoms); flag != "" {
			if t, ok := s.kb.TreatmentFor(flag); ok {
				if advice, ok := t.Advice[lang]; ok {
					resp.Text = advice
				} else if advice, ok := t.Advice["en"]; ok {
					resp.Text = advice
				}
			}
		}
	}

	out := &dto.TurnResponse{
		SessionID:        session.SessionID,
		Language:         lang,
		ResponseText:     resp.Text,
		FollowUpQuestion: resp.FollowUp,
		Urgency:          resp.Urgency,
		Category:         resp.Category,
		Confidence:       resp.Confidence,
		Severity:         assessment.Severity,
		Emergency:        assessment.Emergency,
		MissingFields:    completeness.MissingFields,
	}

	// 7. Prescription once the gate passes. Issued once per session so
	// later turns do not stack duplicate courses.
	if completeness.ReadyForPrescription && resp.Category != "goodbye" && len(session.MedicinesGiven()) == 0 {
		medicines, tests := s.prescriber.Build(session.Profile(), session.Snapshot())
		for _, m := range medicines {
			session.AddMedicine(m)
			out.Medicines = append(out.Medicines, toMedicineDTO(m))
		}
		for _, t := range tests {
			session.AddOrderedTest(t.Name, t.Reason)
			out.Tests = append(out.Tests, dto.TestDTO{Name: t.Name, Reason: t.Reason, Status: t.Status})
		}
	} else if out.FollowUpQuestion == "" && resp.Category != "goodbye" {
		out.FollowUpQuestion = s.nextQuestion(session, completeness, lang)
	}

	session.RecordTurn("assistant", out.ResponseText, lang)
	s.sessionRepo.Save(session)

	s.publishEvents(session, req.Text, lang, summary, assessment, resp)
	s.audit(session, req.Text, out, lang, assessment, extraction)

	return out, nil
}

func (s *consultService) loadOrCreate(sessionID string) *dialog.Context {
	if sessionID != "" {
		if session, ok := s.sessionRepo.Get(sessionID); ok {
			return session
		}
		s.logger.Info("ConsultService", "Session not found, starting fresh", map[string]interface{}{
			"requested_id": sessionID,
		})
	}
	session := dialog.NewContext()
	s.sessionRepo.Save(session)
	return session
}

func (s *consultService) captureProfile(session *dialog.Context, text string) {
	var info dialog.UserInfo
	if m := nameEnRe.FindStringSubmatch(text); m != nil {
		info.Name = m[1]
	} else if m := nameHiRe.FindStringSubmatch(text); m != nil {
		info.Name = m[1]
	}
	if m := ageRe.FindStringSubmatch(text); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil && age > 0 && age < 130 {
			info.Age = age
		}
	}
	if info.Name != "" || info.Age > 0 {
		session.SetUserInfo(info)
	}
}

// nextQuestion asks for whatever the completeness gate still needs, in
// the patient's language: profile fields first, then modifiers of the
// most recent symptom.
func (s *consultService) nextQuestion(session *dialog.Context, c dialog.Completeness, lang string) string {
	hindi := lang == language.Hindi
	for _, missing := range c.MissingFields {
		switch missing {
		case "name":
			if hindi {
				return "आपका नाम क्या है?"
			}
			return "What is your name?"
		case "age":
			if hindi {
				return "आपकी उम्र कितनी है?"
			}
			return "How old are you?"
		case "symptoms":
			if hindi {
				return "आपको क्या तकलीफ है?"
			}
			return "What symptoms are you experiencing?"
		case "symptom details":
			symptoms := session.Snapshot()
			if len(symptoms) == 0 {
				continue
			}
			last := symptoms[len(symptoms)-1]
			if t, ok := s.kb.TreatmentFor(last.Name); ok {
				if q, ok := t.FollowUp[lang]; ok {
					return q
				}
				if q, ok := t.FollowUp["en"]; ok {
					return q
				}
			}
			if hindi {
				return "यह कब से है और कितना तेज़ है?"
			}
			return "Since when do you have this, and how severe is it?"
		}
	}
	return ""
}

// primaryRedFlag names the emergency symptom behind the verdict, or ""
// when the red flag came from the text alone (unconsciousness,
// bleeding) and no symptom-specific advice applies.
func primaryRedFlag(symptoms []extract.Symptom) string {
	for _, s := range symptoms {
		if s.Name == "chest pain" || s.Name == "breathing difficulty" {
			return s.Name
		}
	}
	return ""
}

func (s *consultService) publishEvents(session *dialog.Context, text, lang, summary string, assessment severity.Assessment, resp cascade.Response) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(events.NewTurnCompleted(session.SessionID, resp.Urgency, resp.Category, resp.Source)); err != nil {
		s.logger.Warn("ConsultService", "Failed to publish turn event", map[string]interface{}{"error": err.Error()})
	}
	if assessment.Emergency {
		if err := s.bus.Publish(events.NewEmergency(session.SessionID, text, lang, summary)); err != nil {
			s.logger.Error("ConsultService", "Failed to publish emergency event", map[string]interface{}{"error": err.Error()})
		}
	}
}

// audit persists both sides of the turn when a transcript DB is wired.
// Best effort off the request path.
func (s *consultService) audit(session *dialog.Context, patientText string, out *dto.TurnResponse, lang string, assessment severity.Assessment, extraction extract.Result) {
	if s.transcripts == nil {
		return
	}
	snapshot, err := json.Marshal(extraction.Symptoms)
	if err != nil {
		snapshot = []byte("[]")
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		turns := []entity.ConsultTurn{
			{
				SessionID:       session.SessionID,
				Role:            "patient",
				Text:            patientText,
				Language:        lang,
				Urgency:         out.Urgency,
				Category:        out.Category,
				Emergency:       assessment.Emergency,
				SymptomSnapshot: snapshot,
			},
			{
				SessionID: session.SessionID,
				Role:      "assistant",
				Text:      out.ResponseText,
				Language:  lang,
				Urgency:   out.Urgency,
				Category:  out.Category,
			},
		}
		for i := range turns {
			if err := s.transcripts.Record(ctx, &turns[i]); err != nil {
				s.logger.Warn("ConsultService", "Transcript write failed", map[string]interface{}{
					"session_id": session.SessionID,
					"error":      err.Error(),
				})
				return
			}
		}
	}()
}

func (s *consultService) SessionSummary(ctx context.Context, sessionID string) (*dto.SessionSummaryResponse, error) {
	session, ok := s.sessionRepo.Get(sessionID)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	completeness := session.AssessCompleteness()
	profile := session.Profile()
	out := &dto.SessionSummaryResponse{
		SessionID:            session.SessionID,
		PatientName:          profile.Name,
		PatientAge:           profile.Age,
		SymptomSummary:       session.SummarizeSymptoms(),
		ReadyForPrescription: completeness.ReadyForPrescription,
		MissingFields:        completeness.MissingFields,
	}
	for _, m := range session.MedicinesGiven() {
		out.Medicines = append(out.Medicines, toMedicineDTO(m))
	}
	for _, t := range session.TestsOrdered() {
		out.Tests = append(out.Tests, dto.TestDTO{Name: t.Name, Reason: t.Reason, Status: t.Status})
	}
	return out, nil
}

func (s *consultService) ExportSession(ctx context.Context, sessionID string) (*dto.SessionExportResponse, error) {
	session, ok := s.sessionRepo.Get(sessionID)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	data, err := session.Export()
	if err != nil {
		s.logger.Error("ConsultService", "Session export failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to export session")
	}
	return &dto.SessionExportResponse{
		SessionID: sessionID,
		Context:   string(data),
	}, nil
}

func (s *consultService) ImportSession(ctx context.Context, req *dto.SessionImportRequest) (*dto.SessionResetResponse, error) {
	session, err := dialog.Import([]byte(req.Context))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid session payload")
	}
	s.sessionRepo.Save(session)
	return &dto.SessionResetResponse{SessionID: session.SessionID}, nil
}

func (s *consultService) ResetSession(ctx context.Context, sessionID string) (*dto.SessionResetResponse, error) {
	session, ok := s.sessionRepo.Get(sessionID)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	s.sessionRepo.Delete(sessionID)
	newID := session.Reset()
	s.sessionRepo.Save(session)
	return &dto.SessionResetResponse{SessionID: newID}, nil
}

func toMedicineDTO(m dialog.PrescribedMedicine) dto.MedicineDTO {
	return dto.MedicineDTO{
		Name:         m.Name,
		Composition:  m.Composition,
		Dosage:       m.Dosage,
		Frequency:    m.Frequency,
		Duration:     m.Duration,
		Instructions: m.Instructions,
		Timing:       m.Timing,
	}
}
