package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTurnCompletedImplementsEvent(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var ev Event = TurnCompleted{SessionID: "s1", Turn: 2, Intent: "RECALL", CompanyFound: true, OccurredAt: at}

	assert.Equal(t, TypeTurnCompleted, ev.EventType())
	assert.Equal(t, at, ev.Timestamp())
	assert.Equal(t, "s1", ev.Payload()["session_id"])
	assert.Equal(t, 2, ev.Payload()["turn"])
	assert.Equal(t, true, ev.Payload()["company_found"])
	assert.Equal(t, "2026-01-02T03:04:05Z", ev.Payload()["occurred_at"])
}
