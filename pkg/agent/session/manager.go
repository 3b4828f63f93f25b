package session

import (
	"context"
	"errors"
	"time"

	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/repository/contract"
	"research-agent-be/pkg/store"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found or expired")

// Manager handles session operations
type Manager struct {
	sessionRepo contract.SessionRepository
	logger      logger.ILogger
	now         func() time.Time
}

// NewManager creates a new session manager
func NewManager(sessionRepo contract.SessionRepository, log logger.ILogger) *Manager {
	return &Manager{sessionRepo: sessionRepo, logger: log, now: time.Now}
}

// Create starts a fresh session in the init stage and stores it.
func (m *Manager) Create(ctx context.Context) (*store.Session, error) {
	session := store.NewSession(uuid.NewString(), m.now())
	if err := m.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	m.logger.Info("SessionManager", "Session created", map[string]interface{}{"session_id": session.ID})
	return session, nil
}

// Load retrieves a session or ErrSessionNotFound
func (m *Manager) Load(ctx context.Context, sessionID string) (*store.Session, error) {
	session, found, err := m.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Save persists session state
func (m *Manager) Save(ctx context.Context, session *store.Session) error {
	return m.sessionRepo.Save(ctx, session)
}

// Delete drops the session; deleting a missing id is ErrSessionNotFound.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	if _, err := m.Load(ctx, sessionID); err != nil {
		return err
	}
	if err := m.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	m.logger.Info("SessionManager", "Session deleted", map[string]interface{}{"session_id": sessionID})
	return nil
}

// Now is the clock used for timestamps.
func (m *Manager) Now() time.Time { return m.now() }
