package constant

const (
	AgentTitle  = "🤖 Smart Company Research Agent"
	AgentStatus = "🟢 System Online"
	AgentLogic  = "Intent-Based Determination"

	// Watermill topic for processed turns
	TopicTurnCompleted = "research.turn.completed"

	// Redis channel used by the websocket hub across instances
	HubRedisChannel = "research_session_events"
)
