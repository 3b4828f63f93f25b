package dto

import "time"

const ReplyFormatMarkdown = "markdown+html"

type CreateSessionResponse struct {
	Id          string    `json:"id"`
	Stage       string    `json:"agent_stage"`
	Greeting    string    `json:"greeting"`
	CreatedAt   time.Time `json:"created_at"`
	ReplyFormat string    `json:"format"`
}

type SendChatRequest struct {
	ChatSessionId string `json:"chat_session_id" validate:"required,uuid"`
	Chat          string `json:"chat" validate:"required,max=2000"`
}

type ChatMessageDTO struct {
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId string          `json:"chat_session_id"`
	Stage         string          `json:"agent_stage"`
	TargetCompany string          `json:"target_company"`
	DetailLevel   string          `json:"detail_level"`
	Intent        string          `json:"intent"`
	Status        string          `json:"status"`
	ReplyFormat   string          `json:"format"`
	Sent          *ChatMessageDTO `json:"sent"`
	Reply         *ChatMessageDTO `json:"reply"`
}

type GetSessionResponse struct {
	Id            string     `json:"id"`
	Stage         string     `json:"agent_stage"`
	TargetCompany string     `json:"target_company"`
	DetailLevel   string     `json:"detail_level"`
	Turns         int        `json:"turns"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse = ChatMessageDTO

type CompaniesResponse struct {
	Companies []string `json:"companies"`
	Default   string   `json:"default"`
}

type AgentStatusResponse struct {
	Title  string `json:"title"`
	Status string `json:"status"`
	Logic  string `json:"logic"`
}
