package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"research-agent-be/pkg/knowledge"
	"research-agent-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "research:session:"

// SessionRepository stores sessions as JSON so several API instances can share them.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func key(sessionID string) string { return sessionKeyPrefix + sessionID }

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, key(session.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*store.Session, bool, error) {
	val, err := r.client.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	var session store.Session
	if err := json.Unmarshal(val, &session); err != nil {
		return nil, false, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	if session.Messages == nil {
		session.Messages = []store.Message{}
	}
	// Records written by hand or by older builds may carry any casing
	session.DetailLevel = knowledge.ParseLevel(string(session.DetailLevel))
	return &session, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
