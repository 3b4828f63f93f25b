package bootstrap

import (
	"context"
	"time"

	"research-agent-be/internal/config"
	"research-agent-be/internal/constant"
	"research-agent-be/internal/controller"
	"research-agent-be/internal/handler"
	"research-agent-be/internal/metrics"
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/repository/contract"
	"research-agent-be/internal/repository/memory"
	"research-agent-be/internal/repository/redisrepo"
	"research-agent-be/internal/service"
	"research-agent-be/internal/websocket"
	"research-agent-be/pkg/agent/intent"
	"research-agent-be/pkg/agent/responder"
	"research-agent-be/pkg/agent/session"
	"research-agent-be/pkg/agent/state"
	"research-agent-be/pkg/knowledge"

	pktNats "research-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	ResearchController controller.IResearchController
	LiveChatHandler    *handler.LiveChatHandler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	ResearchService service.IResearchService
	Metrics         *metrics.Metrics
	Logger          logger.ILogger

	closers []func()
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	m := metrics.New(true)
	c := &Container{Metrics: m, Logger: sysLogger}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	rdb := connectRedis(cfg, sysLogger)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var forwarder service.EventForwarder
	if cfg.Nats.Enabled {
		natsPub, err := pktNats.NewPublisher(cfg.Nats.URL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS publisher, turn events stay local", map[string]interface{}{"error": err.Error()})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 4. Domain
	kb := knowledge.NewSeedStore()
	stateManager := state.NewManager(sysLogger)
	resp := responder.NewResponder(kb, intent.NewClassifier(), stateManager, sysLogger, cfg.Agent.ThinkDelay)
	sessionManager := session.NewManager(selectSessionRepository(cfg, rdb, sysLogger), sysLogger)

	// 5. Services
	turnPublisher := service.NewTurnPublisher(constant.TopicTurnCompleted, pubSub)
	c.ConsumerService = service.NewTurnConsumer(pubSub, constant.TopicTurnCompleted, m, forwarder, sysLogger)
	c.ResearchService = service.NewResearchService(sessionManager, resp, kb, turnPublisher, sysLogger)

	// 6. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.HubLogFilePath)
	c.WebSocketHub = websocket.NewHub(rdb, constant.HubRedisChannel, m.ActiveWebsockets, wsLogger)

	// 7. Transport
	c.ResearchController = controller.NewResearchController(c.ResearchService)
	c.LiveChatHandler = handler.NewLiveChatHandler(c.ResearchService, c.WebSocketHub, cfg.App.JWTSecret, sysLogger)

	return c
}

// Close releases infrastructure connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

// connectRedis returns nil when redis is not needed or not reachable.
func connectRedis(cfg *config.Config, log logger.ILogger) *redis.Client {
	if cfg.Redis.URL == "" {
		return nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.Redis.URL}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Bootstrap", "Failed to connect to Redis, running single instance", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

func selectSessionRepository(cfg *config.Config, rdb *redis.Client, log logger.ILogger) contract.SessionRepository {
	if cfg.Session.Store == config.SessionStoreRedis {
		if rdb != nil {
			log.Info("Bootstrap", "Using Redis session store", nil)
			return redisrepo.NewSessionRepository(rdb, cfg.Session.TTL)
		}
		log.Warn("Bootstrap", "Redis session store requested but Redis is unavailable, using memory", nil)
	}
	return memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)
}
