package events

import "time"

// TypeTurnCompleted is emitted after every processed chat turn.
const TypeTurnCompleted = "research.turn.completed"

// TurnCompleted describes one processed turn. It never carries message text.
type TurnCompleted struct {
	SessionID    string    `json:"session_id"`
	Turn         int       `json:"turn"`
	Stage        string    `json:"stage"`
	Intent       string    `json:"intent"`
	Company      string    `json:"company"`
	DetailLevel  string    `json:"detail_level"`
	CompanyFound bool      `json:"company_found"`
	DurationMs   int64     `json:"duration_ms"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e TurnCompleted) EventType() string {
	return TypeTurnCompleted
}

func (e TurnCompleted) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":    e.SessionID,
		"turn":          e.Turn,
		"stage":         e.Stage,
		"intent":        e.Intent,
		"company":       e.Company,
		"detail_level":  e.DetailLevel,
		"company_found": e.CompanyFound,
		"duration_ms":   e.DurationMs,
		"occurred_at":   e.OccurredAt.Format(time.RFC3339Nano),
	}
}

func (e TurnCompleted) Timestamp() time.Time {
	return e.OccurredAt
}
