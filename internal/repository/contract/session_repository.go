package contract

import (
	"context"

	"research-agent-be/pkg/store"
)

// SessionRepository holds live research sessions. Nothing outlives its TTL.
type SessionRepository interface {
	Save(ctx context.Context, session *store.Session) error
	Get(ctx context.Context, sessionID string) (*store.Session, bool, error)
	Delete(ctx context.Context, sessionID string) error
}
