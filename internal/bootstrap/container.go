package bootstrap

import (
	"context"
	"log"

	"farm2bag-chatbot-be/internal/config"
	"farm2bag-chatbot-be/internal/controller"
	"farm2bag-chatbot-be/internal/pkg/logger"
	"farm2bag-chatbot-be/internal/repository/contract"
	"farm2bag-chatbot-be/internal/repository/memory"
	"farm2bag-chatbot-be/internal/repository/redisstore"
	"farm2bag-chatbot-be/internal/service"
	"farm2bag-chatbot-be/pkg/catalog"
	"farm2bag-chatbot-be/pkg/chatbot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	OrderConsumerService service.IOrderConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Catalog (degrades to empty on a missing file, never aborts)
	store, err := catalog.LoadStore(cfg.Catalog.CSVPath)
	if err != nil {
		log.Printf("[WARN] Failed to load catalog from %s: %v. Starting with empty catalog", cfg.Catalog.CSVPath, err)
		store = &catalog.Store{}
	}
	log.Printf("[INFO] Loaded %d products from %s", store.Len(), cfg.Catalog.CSVPath)

	// 3. Cart Storage based on Config
	var cartRepo contract.CartRepository
	if cfg.App.CartStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory cart store", err)
			cartRepo = memory.NewCartRepository()
		} else {
			cartRepo = redisstore.NewCartRepository(rdb)
			log.Printf("[INFO] Using Cart Store: REDIS")
		}
	} else {
		cartRepo = memory.NewCartRepository()
		log.Printf("[INFO] Using Cart Store: MEMORY")
	}

	// 4. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.Order.PlacedTopicName, pubSub)
	orderConsumerService := service.NewOrderConsumerService(pubSub, cfg.Order.PlacedTopicName, sysLogger)

	// 5. Generative Responder
	responder := chatbot.NewGeminiResponder(cfg.Keys.GoogleGemini)

	chatbotService := service.NewChatbotService(
		store,
		cartRepo,
		responder,
		publisherService,
		sysLogger,
		cfg.Order.WhatsAppNumber,
	)

	// 6. Controllers
	return &Container{
		ChatbotController:    controller.NewChatbotController(chatbotService),
		OrderConsumerService: orderConsumerService,
	}
}
