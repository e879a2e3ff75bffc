package contract

import (
	"ai-triage-be/pkg/triage/dialog"
)

// ISessionRepository stores dialogue contexts by session ID. Sessions
// are ephemeral; implementations are free to expire them.
type ISessionRepository interface {
	Save(ctx *dialog.Context)
	Get(sessionID string) (*dialog.Context, bool)
	Delete(sessionID string)
}
