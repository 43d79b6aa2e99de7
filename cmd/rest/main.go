package main

import (
	"context"
	"log"

	"farm2bag-chatbot-be/internal/bootstrap"
	"farm2bag-chatbot-be/internal/config"
	"farm2bag-chatbot-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Order Consumer Service...")
		if err := container.OrderConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
