package nats

import (
	"testing"

	"research-agent-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.research.turn.completed", Subject(events.TypeTurnCompleted))
}
