package bootstrap

import (
	"context"
	"log"
	"time"

	"doc-agent-be/internal/config"
	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/controller"
	"doc-agent-be/internal/pkg/logger"
	"doc-agent-be/internal/repository/memory"
	"doc-agent-be/internal/service"
	"doc-agent-be/internal/session"
	"doc-agent-be/internal/websocket"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/reconcile"
	"doc-agent-be/pkg/store"

	pktNats "doc-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	DocumentController controller.IDocumentController
	ChatController     controller.IChatController
	AgentController    controller.IAgentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	Hub *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	api := letta.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token)
	api.HTTP.Timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	sess := session.NewContext()
	conversation := store.NewConversation()
	taskRepo := memory.NewTaskRepository()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(constant.TopicDocumentIngested, pubSub)

	agentService := service.NewAgentService(api, sess, cfg.Agent.Name, sysLogger)
	documentService := service.NewDocumentService(api, sess, wsHub, natsPub, sysLogger)
	ingestionService := service.NewIngestionService(api, sess, taskRepo, publisherService, wsHub, natsPub, sysLogger)
	chatService := service.NewChatService(api, sess, conversation, wsHub, natsPub, sysLogger)

	reconciler := reconcile.New(api, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicDocumentIngested,
		sess,
		documentService,
		chatService,
		reconciler,
	)

	// 4. Agent Bootstrap
	// The backend must be reachable at startup; nothing works without an agent.
	if err := agentService.Bootstrap(context.Background()); err != nil {
		log.Fatalf("[FATAL] Failed to bootstrap agent: %v", err)
	}

	// Initial document snapshot and reconcile pass; degraded startup is fine,
	// the next ingestion event repeats both.
	if docs, err := documentService.RefreshCache(context.Background()); err != nil {
		log.Printf("[WARN] Initial document refresh failed: %v", err)
	} else if agent := sess.Agent(); agent != nil {
		if _, err := reconciler.Reconcile(context.Background(), agent.ID, docs); err != nil {
			log.Printf("[WARN] Initial reconcile pass failed: %v", err)
		}
	}

	// 5. Controllers
	return &Container{
		Hub:                wsHub,
		DocumentController: controller.NewDocumentController(documentService, ingestionService),
		ChatController:     controller.NewChatController(chatService),
		AgentController:    controller.NewAgentController(agentService),

		ConsumerService: consumerService,
	}
}
