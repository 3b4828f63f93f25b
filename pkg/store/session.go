package store

import (
	"time"

	"research-agent-be/pkg/knowledge"
)

// Message is a single transcript entry.
type Message struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Session represents the active research conversation held in memory
type Session struct {
	ID    string `json:"id"`
	Stage string `json:"agent_stage"` // "init" | "refining"

	// Set verbatim from the first user turn
	TargetCompany string          `json:"target_company"`
	DetailLevel   knowledge.Level `json:"detail_level"`

	// Append-only, never trimmed
	Messages []Message `json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StageInit     = "init"
	StageRefining = "refining"

	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// NewSession returns a session in the init stage.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:          id,
		Stage:       StageInit,
		DetailLevel: knowledge.LevelShort,
		Messages:    []Message{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Append adds a transcript entry.
func (s *Session) Append(role, content string, now time.Time) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content, CreatedAt: now})
	s.UpdatedAt = now
}

// Turns counts user messages.
func (s *Session) Turns() int {
	n := 0
	for _, m := range s.Messages {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Messages = make([]Message, len(s.Messages))
	copy(c.Messages, s.Messages)
	return &c
}
