package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IAlertMailer interface {
	SendEmergencyAlert(sessionID, patientText, symptomSummary string) error
}

type alertMailer struct {
	dialer      *gomail.Dialer
	senderEmail string
	careTeam    string
}

// NewAlertMailer mails emergency-flagged turns to the care team inbox.
func NewAlertMailer(host string, port int, username, password, senderEmail, careTeam string) IAlertMailer {
	d := gomail.NewDialer(host, port, username, password)
	return &alertMailer{
		dialer:      d,
		senderEmail: senderEmail,
		careTeam:    careTeam,
	}
}

func (s *alertMailer) SendEmergencyAlert(sessionID, patientText, symptomSummary string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.careTeam)
	m.SetHeader("Subject", fmt.Sprintf("EMERGENCY: triage session %s flagged", sessionID))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2 style="color: #c0392b;">Emergency flag raised</h2>
			<p><b>Session:</b> %s</p>
			<p><b>Patient said:</b> %s</p>
			<p><b>Known symptoms:</b> %s</p>
			<p>The patient was told to seek immediate care. Please follow up.</p>
		</div>
	`, sessionID, patientText, symptomSummary)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send emergency alert: %w", err)
	}
	return nil
}
