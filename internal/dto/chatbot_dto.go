package dto

import (
	"time"

	"farm2bag-chatbot-be/pkg/cart"
)

// ChatReply is the discriminated reply payload returned for every
// utterance: a plain message, a message with an attached product snapshot,
// or an error for malformed input. The presentation layer renders any
// lightweight markup in Message.
type ChatReply struct {
	Message     string          `json:"message,omitempty"`
	ProductInfo *ProductInfoDTO `json:"product_info,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// ProductInfoDTO is the structured product snapshot for UI rendering.
type ProductInfoDTO struct {
	Product     string `json:"product"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	StockStatus string `json:"stock_status"`
}

// SendMessageRequest is the POST body variant of the chat endpoint.
type SendMessageRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
	Message   string `json:"message" validate:"max=2000"`
}

// OrderPlacedMessage is published to the ordering channel when a checkout
// succeeds.
type OrderPlacedMessage struct {
	SessionID   string      `json:"session_id"`
	Items       []cart.Item `json:"items"`
	Total       float64     `json:"total"`
	WhatsAppURL string      `json:"whatsapp_url"`
	PlacedAt    time.Time   `json:"placed_at"`
}
