package service

import (
	"context"
	"time"

	"research-agent-be/internal/constant"
	"research-agent-be/internal/dto"
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/pkg/agent/responder"
	"research-agent-be/pkg/agent/response"
	"research-agent-be/pkg/agent/session"
	"research-agent-be/pkg/events"
	"research-agent-be/pkg/knowledge"
	"research-agent-be/pkg/store"
)

// IResearchService defines the research chat service interface
type IResearchService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.GetSessionResponse, error)
	GetChatHistory(ctx context.Context, sessionId string) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error
	ListCompanies(ctx context.Context) *dto.CompaniesResponse
	AgentStatus(ctx context.Context) *dto.AgentStatusResponse
}

// researchService coordinates domain components
type researchService struct {
	sessionManager *session.Manager
	responder      *responder.Responder
	kb             *knowledge.Store
	publisher      ITurnPublisher
	logger         logger.ILogger
	locks          *sessionLocks
}

// NewResearchService creates a new research service
func NewResearchService(
	sessionManager *session.Manager,
	resp *responder.Responder,
	kb *knowledge.Store,
	publisher ITurnPublisher,
	log logger.ILogger,
) IResearchService {
	if publisher == nil {
		publisher = NopTurnPublisher{}
	}
	return &researchService{
		sessionManager: sessionManager,
		responder:      resp,
		kb:             kb,
		publisher:      publisher,
		logger:         log,
		locks:          newSessionLocks(),
	}
}

// CreateSession creates a new research session in the init stage
func (rs *researchService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sess, err := rs.sessionManager.Create(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CreateSessionResponse{
		Id:          sess.ID,
		Stage:       sess.Stage,
		Greeting:    response.Greeting,
		CreatedAt:   sess.CreatedAt,
		ReplyFormat: dto.ReplyFormatMarkdown,
	}, nil
}

// GetSession returns the session state without the transcript
func (rs *researchService) GetSession(ctx context.Context, sessionId string) (*dto.GetSessionResponse, error) {
	sess, err := rs.sessionManager.Load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	resp := &dto.GetSessionResponse{
		Id:            sess.ID,
		Stage:         sess.Stage,
		TargetCompany: sess.TargetCompany,
		DetailLevel:   string(sess.DetailLevel),
		Turns:         sess.Turns(),
		CreatedAt:     sess.CreatedAt,
	}
	if !sess.UpdatedAt.Equal(sess.CreatedAt) {
		updated := sess.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp, nil
}

// GetChatHistory retrieves the transcript in order
func (rs *researchService) GetChatHistory(ctx context.Context, sessionId string) ([]*dto.GetChatHistoryResponse, error) {
	sess, err := rs.sessionManager.Load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Role:      m.Role,
			Chat:      m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return resp, nil
}

// SendChat runs one turn. Turns on the same session are serialized.
func (rs *researchService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	unlock := rs.locks.Lock(request.ChatSessionId)
	defer unlock()

	start := time.Now()

	sess, err := rs.sessionManager.Load(ctx, request.ChatSessionId)
	if err != nil {
		return nil, err
	}

	sentAt := rs.sessionManager.Now()
	result, err := rs.responder.Respond(ctx, sess, request.Chat)
	if err != nil {
		return nil, err
	}
	repliedAt := rs.sessionManager.Now()

	sess.Append(store.RoleUser, request.Chat, sentAt)
	sess.Append(store.RoleAssistant, result.Reply, repliedAt)

	if err := rs.sessionManager.Save(ctx, sess); err != nil {
		return nil, err
	}

	event := events.TurnCompleted{
		SessionID:    sess.ID,
		Turn:         sess.Turns(),
		Stage:        sess.Stage,
		Intent:       string(result.Intent),
		Company:      sess.TargetCompany,
		DetailLevel:  string(sess.DetailLevel),
		CompanyFound: result.CompanyFound,
		DurationMs:   time.Since(start).Milliseconds(),
		OccurredAt:   repliedAt,
	}
	if err := rs.publisher.PublishTurn(ctx, event); err != nil {
		rs.logger.Warn("ResearchService", "Failed to publish turn event", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}

	return &dto.SendChatResponse{
		ChatSessionId: sess.ID,
		Stage:         sess.Stage,
		TargetCompany: sess.TargetCompany,
		DetailLevel:   string(sess.DetailLevel),
		Intent:        string(result.Intent),
		Status:        result.Status,
		ReplyFormat:   dto.ReplyFormatMarkdown,
		Sent: &dto.ChatMessageDTO{
			Role:      store.RoleUser,
			Chat:      request.Chat,
			CreatedAt: sentAt,
		},
		Reply: &dto.ChatMessageDTO{
			Role:      store.RoleAssistant,
			Chat:      result.Reply,
			CreatedAt: repliedAt,
		},
	}, nil
}

// DeleteSession ends the conversation and discards its state
func (rs *researchService) DeleteSession(ctx context.Context, sessionId string) error {
	unlock := rs.locks.Lock(sessionId)
	defer unlock()
	return rs.sessionManager.Delete(ctx, sessionId)
}

func (rs *researchService) ListCompanies(_ context.Context) *dto.CompaniesResponse {
	return &dto.CompaniesResponse{
		Companies: rs.kb.Companies(),
		Default:   rs.kb.DefaultKey(),
	}
}

func (rs *researchService) AgentStatus(_ context.Context) *dto.AgentStatusResponse {
	return &dto.AgentStatusResponse{
		Title:  constant.AgentTitle,
		Status: constant.AgentStatus,
		Logic:  constant.AgentLogic,
	}
}
