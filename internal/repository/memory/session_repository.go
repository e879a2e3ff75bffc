package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ai-triage-be/pkg/triage/dialog"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(ctx *dialog.Context) {
	r.cache.Set(ctx.SessionID, ctx, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*dialog.Context, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dialog.Context), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
