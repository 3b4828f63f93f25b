package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"research-agent-be/internal/config"
	"research-agent-be/internal/dto"
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/repository/memory"
	"research-agent-be/internal/service"
	"research-agent-be/pkg/agent/intent"
	"research-agent-be/pkg/agent/responder"
	"research-agent-be/pkg/agent/response"
	"research-agent-be/pkg/agent/session"
	"research-agent-be/pkg/agent/state"
	"research-agent-be/pkg/knowledge"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

var (
	userLabel   = color.New(color.FgCyan, color.Bold).SprintFunc()
	agentLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
	statusLabel = color.New(color.FgHiBlack, color.Italic).SprintFunc()
)

func main() {
	cfg := config.Load()
	log := logger.NewIsolatedLogger("logs/chat.log")
	defer log.Sync()

	kb := knowledge.NewSeedStore()
	resp := responder.NewResponder(kb, intent.NewClassifier(), state.NewManager(log), log, cfg.Agent.ThinkDelay)
	sm := session.NewManager(memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval), log)
	svc := service.NewResearchService(sm, resp, kb, service.NopTurnPublisher{}, log)

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		color.Red("Failed to init renderer: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	status := svc.AgentStatus(ctx)
	color.Cyan("%s  %s", status.Title, status.Status)
	fmt.Println(statusLabel("Logic: " + status.Logic + "  (/reset for a new session, /quit to exit)"))

	sessionID := newSession(ctx, svc)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(userLabel("you> "))
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())

		switch text {
		case "/quit":
			return
		case "/reset":
			_ = svc.DeleteSession(ctx, sessionID)
			sessionID = newSession(ctx, svc)
			continue
		}

		res, err := svc.SendChat(ctx, &dto.SendChatRequest{ChatSessionId: sessionID, Chat: text})
		if err != nil {
			color.Red("error: %v", err)
			continue
		}
		fmt.Println(statusLabel(res.Status))
		fmt.Println(agentLabel("agent>"))
		fmt.Println(render(renderer, res.Reply.Chat))
	}
}

func newSession(ctx context.Context, svc service.IResearchService) string {
	created, err := svc.CreateSession(ctx)
	if err != nil {
		color.Red("Failed to create session: %v", err)
		os.Exit(1)
	}
	fmt.Println(agentLabel("agent> ") + response.Greeting)
	return created.Id
}

// render falls back to the raw text when markdown rendering fails.
func render(r *glamour.TermRenderer, reply string) string {
	// reports use <br> for spacing, the terminal wants newlines
	reply = strings.ReplaceAll(reply, "<br>", "\n")
	out, err := r.Render(reply)
	if err != nil {
		return reply
	}
	return out
}
