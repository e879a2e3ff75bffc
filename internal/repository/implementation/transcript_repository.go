package implementation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ai-triage-be/internal/entity"
)

// ITranscriptRepository persists audited consult turns.
type ITranscriptRepository interface {
	Record(ctx context.Context, turn *entity.ConsultTurn) error
	BySession(ctx context.Context, sessionID string) ([]entity.ConsultTurn, error)
}

type transcriptRepository struct {
	db *gorm.DB
}

func NewTranscriptRepository(db *gorm.DB) ITranscriptRepository {
	return &transcriptRepository{db: db}
}

func (r *transcriptRepository) Record(ctx context.Context, turn *entity.ConsultTurn) error {
	if turn.ID == uuid.Nil {
		turn.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(turn).Error; err != nil {
		return fmt.Errorf("record consult turn: %w", err)
	}
	return nil
}

func (r *transcriptRepository) BySession(ctx context.Context, sessionID string) ([]entity.ConsultTurn, error) {
	var turns []entity.ConsultTurn
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&turns).Error
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	return turns, nil
}
