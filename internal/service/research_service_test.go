package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"research-agent-be/internal/dto"
	"research-agent-be/internal/metrics"
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/repository/memory"
	"research-agent-be/pkg/agent/intent"
	"research-agent-be/pkg/agent/responder"
	"research-agent-be/pkg/agent/response"
	"research-agent-be/pkg/agent/session"
	"research-agent-be/pkg/agent/state"
	"research-agent-be/pkg/events"
	"research-agent-be/pkg/knowledge"
	"research-agent-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(pub ITurnPublisher) IResearchService {
	log := logger.NewNopLogger()
	kb := knowledge.NewSeedStore()
	resp := responder.NewResponder(kb, intent.NewClassifier(), state.NewManager(log), log, 0)
	sm := session.NewManager(memory.NewSessionRepository(time.Hour, time.Minute), log)
	return NewResearchService(sm, resp, kb, pub, log)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.TurnCompleted
}

func (p *recordingPublisher) PublishTurn(_ context.Context, ev events.TurnCompleted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func send(t *testing.T, svc IResearchService, id, text string) *dto.SendChatResponse {
	t.Helper()
	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{ChatSessionId: id, Chat: text})
	require.NoError(t, err)
	return res
}

func TestResearchConversation(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := newTestService(pub)
	kb := knowledge.NewSeedStore()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.StageInit, created.Stage)
	assert.Equal(t, response.Greeting, created.Greeting)

	res := send(t, svc, created.Id, "Tesla")
	assert.Equal(t, store.StageRefining, res.Stage)
	assert.Equal(t, "Tesla", res.TargetCompany)
	assert.Equal(t, "short", res.DetailLevel)
	assert.Equal(t, response.Initial("Tesla", kb.Lookup("tesla", knowledge.LevelShort)), res.Reply.Chat)
	assert.Equal(t, "🔍 **Analyzing: Tesla...**", res.Status)
	assert.Equal(t, dto.ReplyFormatMarkdown, res.ReplyFormat)

	res = send(t, svc, created.Id, "show me the entire report")
	assert.Equal(t, "long", res.DetailLevel)
	assert.Equal(t, string(intent.IntentFullReport), res.Intent)

	res = send(t, svc, created.Id, "show it again")
	assert.Equal(t, response.Recall(knowledge.LevelLong, kb.Lookup("tesla", knowledge.LevelLong)), res.Reply.Chat)

	res = send(t, svc, created.Id, "what about risks")
	assert.Equal(t, response.RiskUpdate, res.Reply.Chat)
	assert.Equal(t, "long", res.DetailLevel)

	res = send(t, svc, created.Id, "hello")
	assert.Equal(t, response.Fallback, res.Reply.Chat)

	history, err := svc.GetChatHistory(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, history, 10)
	assert.Equal(t, store.RoleUser, history[0].Role)
	assert.Equal(t, "Tesla", history[0].Chat)
	assert.Equal(t, store.RoleAssistant, history[9].Role)
	assert.Equal(t, response.Fallback, history[9].Chat)

	info, err := svc.GetSession(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, 5, info.Turns)
	assert.Equal(t, "long", info.DetailLevel)
	assert.NotNil(t, info.UpdatedAt)

	require.Len(t, pub.events, 5)
	assert.Equal(t, string(intent.IntentInitial), pub.events[0].Intent)
	assert.Equal(t, 1, pub.events[0].Turn)
	assert.True(t, pub.events[0].CompanyFound)
	assert.Equal(t, string(intent.IntentFallback), pub.events[4].Intent)
	assert.Equal(t, 5, pub.events[4].Turn)
}

func TestSendChatUnknownSession(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{ChatSessionId: "missing", Chat: "Tesla"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSendChatCancelledLeavesSessionUntouched(t *testing.T) {
	log := logger.NewNopLogger()
	kb := knowledge.NewSeedStore()
	resp := responder.NewResponder(kb, intent.NewClassifier(), state.NewManager(log), log, time.Hour)
	sm := session.NewManager(memory.NewSessionRepository(time.Hour, time.Minute), log)
	svc := NewResearchService(sm, resp, kb, nil, log)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.SendChat(ctx, &dto.SendChatRequest{ChatSessionId: created.Id, Chat: "Tesla"})
	assert.ErrorIs(t, err, context.Canceled)

	history, err := svc.GetChatHistory(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)
	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, created.Id))
	_, err = svc.GetSession(ctx, created.Id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestConcurrentTurnsOnOneSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)
	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SendChat(ctx, &dto.SendChatRequest{ChatSessionId: created.Id, Chat: "report"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	history, err := svc.GetChatHistory(ctx, created.Id)
	require.NoError(t, err)
	assert.Len(t, history, 40)

	// exactly one turn was the init turn
	initial := 0
	for _, m := range history {
		if m.Role == store.RoleAssistant && strings.HasPrefix(m.Chat, "I found data for") {
			initial++
		}
	}
	assert.Equal(t, 1, initial)
}

func TestListCompaniesAndStatus(t *testing.T) {
	svc := newTestService(nil)
	c := svc.ListCompanies(context.Background())
	assert.Equal(t, []string{"eightfold ai", "tesla"}, c.Companies)
	assert.Equal(t, knowledge.DefaultCompany, c.Default)

	st := svc.AgentStatus(context.Background())
	assert.Equal(t, "🤖 Smart Company Research Agent", st.Title)
	assert.Equal(t, "Intent-Based Determination", st.Logic)
}

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *recordingForwarder) Publish(_ context.Context, ev events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func (f *recordingForwarder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestTurnEventsReachConsumer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	m := metrics.New(false)
	fwd := &recordingForwarder{}
	consumer := NewTurnConsumer(pubSub, "turns", m, fwd, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	svc := newTestService(NewTurnPublisher("turns", pubSub))
	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	send(t, svc, created.Id, "Unknown Co")
	send(t, svc, created.Id, "complete")

	assert.Eventually(t, func() bool { return fwd.count() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsStarted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FallbackLookups))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TurnsTotal.WithLabelValues(string(intent.IntentFullReport))))

	fwd.mu.Lock()
	defer fwd.mu.Unlock()
	assert.Equal(t, events.TypeTurnCompleted, fwd.events[0].EventType())
}

func TestSessionLocksRelease(t *testing.T) {
	l := newSessionLocks()
	unlock := l.Lock("a")
	assert.Equal(t, 1, l.size())
	unlock()
	assert.Equal(t, 0, l.size())
}
