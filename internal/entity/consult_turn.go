package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConsultTurn is one audited conversation turn. Written only when a
// database is configured; the live engine never reads it back.
type ConsultTurn struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID       string         `gorm:"index;not null" json:"session_id"`
	Role            string         `gorm:"not null" json:"role"`
	Text            string         `gorm:"type:text;not null" json:"text"`
	Language        string         `json:"language"`
	Urgency         string         `json:"urgency"`
	Category        string         `json:"category"`
	Emergency       bool           `json:"emergency"`
	SymptomSnapshot datatypes.JSON `gorm:"type:jsonb" json:"symptom_snapshot"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (ConsultTurn) TableName() string {
	return "consult_turns"
}
