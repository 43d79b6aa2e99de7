package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Keys    APIKeys
	Order   OrderConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	CartStore          string // "memory" or "redis"
	RedisURL           string
}

type CatalogConfig struct {
	CSVPath string
}

type APIKeys struct {
	GoogleGemini string
}

type OrderConfig struct {
	PlacedTopicName string
	WhatsAppNumber  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/chatbot.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			CartStore:          getEnv("CART_STORE", "memory"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Catalog: CatalogConfig{
			CSVPath: getEnv("CATALOG_CSV_PATH", "cleaned_products.csv"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Order: OrderConfig{
			PlacedTopicName: getEnv("ORDER_PLACED_TOPIC_NAME", "ORDER_PLACED"),
			WhatsAppNumber:  getEnv("WHATSAPP_ORDER_NUMBER", "7305157325"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
