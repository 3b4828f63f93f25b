package state

import (
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/pkg/knowledge"
	"research-agent-be/pkg/store"
)

// Manager handles session stage and detail level transitions
type Manager struct {
	logger logger.ILogger
}

// NewManager creates a new state manager
func NewManager(logger logger.ILogger) *Manager {
	return &Manager{logger: logger}
}

// TransitionToRefining records the target company and leaves the init stage.
// It is the only stage transition; refining is terminal.
func (m *Manager) TransitionToRefining(session *store.Session, company string) {
	if session.Stage == store.StageRefining {
		return
	}
	session.TargetCompany = company
	session.DetailLevel = knowledge.LevelShort
	session.Stage = store.StageRefining
	m.logger.Debug("State", "Transitioned to REFINING", map[string]interface{}{
		"session_id": session.ID,
		"company":    company,
	})
}

// SetDetailLevel updates the sticky detail level.
func (m *Manager) SetDetailLevel(session *store.Session, level knowledge.Level) {
	if session.DetailLevel == level {
		return
	}
	m.logger.Debug("State", "Detail level changed", map[string]interface{}{
		"session_id": session.ID,
		"from":       string(session.DetailLevel),
		"to":         string(level),
	})
	session.DetailLevel = level
}
