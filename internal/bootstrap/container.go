package bootstrap

import (
	"context"
	"log"
	"time"

	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/controller"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/repository/implementation"
	"hr-chatbot-be/internal/repository/memory"
	"hr-chatbot-be/internal/repository/unitofwork"
	"hr-chatbot-be/internal/service"
	"hr-chatbot-be/pkg/llm"
	"hr-chatbot-be/pkg/llm/factory"
	"hr-chatbot-be/pkg/pipeline/executor"
	"hr-chatbot-be/pkg/pipeline/validator"

	pktNats "hr-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	usageTopic   = "usage.events"
	referenceTTL = 30 * time.Minute
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ChatbotController  controller.IChatbotController
	SettingsController controller.ISettingsController
	AdminController    controller.IAdminController
	DatasetController  controller.IDatasetController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

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
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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

	revocationService := service.NewTokenRevocationService(rdb)
	serverutils.SetTokenRevoker(revocationService)

	// 3. Question Pipeline
	baseProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.AnthropicKey,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.RequestTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)
	llmProvider := llm.NewRetryProvider(baseProvider, cfg.Ai.MaxRetries)

	pipeline := executor.New(
		llmProvider,
		implementation.NewQueryRunner(db),
		cfg.Ai.MaxTokens,
	)
	questionValidator := validator.New()

	// Per-session reference cache for follow-up questions
	refStore := memory.NewReferenceStore(referenceTTL)

	// 4. Services
	publisherService := service.NewPublisherService(usageTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, usageTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, revocationService, natsPub, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
	chatbotService := service.NewChatbotService(
		uowFactory,
		pipeline,
		questionValidator,
		refStore,
		sysLogger,
		publisherService,
		natsPub,
	)
	settingsService := service.NewSettingsService(uowFactory)
	adminService := service.NewAdminService(uowFactory, sysLogger, natsPub)
	datasetService := service.NewDatasetService(uowFactory)

	// Audit trail worker
	if natsSub != nil {
		auditService := service.NewAuditService(natsSub, uowFactory, sysLogger)
		if err := auditService.Start(); err != nil {
			log.Printf("[WARN] Failed to start audit subscriber: %v", err)
		}
	}

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ChatbotController:  controller.NewChatbotController(chatbotService),
		SettingsController: controller.NewSettingsController(settingsService),
		AdminController:    controller.NewAdminController(adminService),
		DatasetController:  controller.NewDatasetController(datasetService),

		ConsumerService: consumerService,
	}
}
