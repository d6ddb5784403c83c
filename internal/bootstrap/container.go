package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"scholarship-info-be/internal/config"
	"scholarship-info-be/internal/controller"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/internal/repository/unitofwork"
	"scholarship-info-be/internal/service"
	"scholarship-info-be/pkg/llm/factory"
	pkgNats "scholarship-info-be/pkg/nats"
	"scholarship-info-be/pkg/rag/executor"
	"scholarship-info-be/pkg/rag/history"
	"scholarship-info-be/pkg/rag/intent"
	"scholarship-info-be/pkg/rag/response"
	"scholarship-info-be/pkg/rag/retrieval"
	"scholarship-info-be/pkg/rag/search"
	"scholarship-info-be/pkg/ratelimit"
	"scholarship-info-be/pkg/websearch"
	"scholarship-info-be/pkg/websearch/google"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ChatController         controller.IChatController
	AnnouncementController controller.IAnnouncementController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipelineLogger := logger.NewIsolatedLogger(cfg.App.PipelineLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

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

	// 4. AI Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	var searchProvider websearch.Provider
	if cfg.Keys.GoogleSearch != "" && cfg.Keys.GoogleSearchEngine != "" {
		searchProvider = google.NewClient(cfg.Keys.GoogleSearch, cfg.Keys.GoogleSearchEngine)
		log.Println("[INFO] Web search fallback: Google Programmable Search")
	} else {
		searchProvider = websearch.Disabled{}
		log.Println("[WARN] Web search fallback disabled (no API key configured)")
	}

	// 5. Answer Pipeline
	recorder := history.NewRecorder(pubSub, pipelineLogger)
	pipeline := executor.NewPipeline(
		intent.NewClassifier(llmProvider, pipelineLogger),
		retrieval.NewRetriever(service.NewAnnouncementSource(uowFactory), llmProvider, pipelineLogger),
		search.NewSearcher(searchProvider, llmProvider, pipelineLogger),
		response.NewGenerator(llmProvider),
		response.Finalize,
		recorder,
		pipelineLogger,
	)

	limiter := ratelimit.NewLimiter(rdb, cfg.Chat.RateLimit,
		time.Duration(cfg.Chat.RateLimitWindow)*time.Second)

	// 6. Services
	chatService := service.NewChatService(pipeline, limiter, uowFactory, cfg.Chat.HistoryMaxTurns, sysLogger)
	announcementService := service.NewAnnouncementService(uowFactory, natsPub, sysLogger)
	authService := service.NewAuthService(uowFactory)
	consumerService := service.NewConsumerService(pubSub, uowFactory, sysLogger)

	// 7. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ChatController:         controller.NewChatController(chatService),
		AnnouncementController: controller.NewAnnouncementController(announcementService),
		ConsumerService:        consumerService,
	}
}
