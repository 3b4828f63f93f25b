package session

import (
	"context"
	"testing"
	"time"

	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/repository/memory"
	"research-agent-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(memory.NewSessionRepository(time.Hour, time.Minute), logger.NewNopLogger())
}

func TestCreateAndLoad(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()

	s, err := m.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, store.StageInit, s.Stage)
	assert.Empty(t, s.Messages)

	got, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	other, err := m.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestLoadMissing(t *testing.T) {
	_, err := newTestManager().Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()
	s, err := m.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, s.ID))
	_, err = m.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(ctx, s.ID), ErrSessionNotFound)
}
