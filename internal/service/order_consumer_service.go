package service

import (
	"context"
	"encoding/json"

	"farm2bag-chatbot-be/internal/dto"
	"farm2bag-chatbot-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IOrderConsumerService drains order-placed events from the ordering
// channel. It is the in-process stand-in for the external ordering system
// the summaries are handed to.
type IOrderConsumerService interface {
	Consume(ctx context.Context) error
}

type orderConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewOrderConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IOrderConsumerService {
	return &orderConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *orderConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *orderConsumerService) processMessage(msg *message.Message) {
	var payload dto.OrderPlacedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ORDER", "Failed to unmarshal order event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("ORDER", "Order placed", map[string]interface{}{
		"session_id": payload.SessionID,
		"items":      len(payload.Items),
		"total":      payload.Total,
		"placed_at":  payload.PlacedAt,
	})

	msg.Ack()
}
