package store

import (
	"testing"
	"time"

	"research-agent-be/pkg/knowledge"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	now := time.Now()
	s := NewSession("abc", now)

	assert.Equal(t, StageInit, s.Stage)
	assert.Equal(t, knowledge.LevelShort, s.DetailLevel)
	assert.Empty(t, s.TargetCompany)
	assert.Empty(t, s.Messages)
	assert.Equal(t, now, s.UpdatedAt)
}

func TestAppendAndTurns(t *testing.T) {
	start := time.Now()
	s := NewSession("abc", start)

	later := start.Add(time.Second)
	s.Append(RoleUser, "Tesla", later)
	s.Append(RoleAssistant, "report", later)
	s.Append(RoleUser, "", later)

	assert.Len(t, s.Messages, 3)
	assert.Equal(t, 2, s.Turns())
	assert.Equal(t, later, s.UpdatedAt)
	assert.Equal(t, "Tesla", s.Messages[0].Content)
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSession("abc", time.Now())
	s.Append(RoleUser, "Tesla", time.Now())

	c := s.Clone()
	c.Append(RoleAssistant, "hi", time.Now())
	c.Messages[0].Content = "changed"
	c.Stage = StageRefining

	assert.Len(t, s.Messages, 1)
	assert.Equal(t, "Tesla", s.Messages[0].Content)
	assert.Equal(t, StageInit, s.Stage)
}
