package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"farm2bag-chatbot-be/internal/constant"
	"farm2bag-chatbot-be/internal/dto"
	"farm2bag-chatbot-be/internal/mapper"
	"farm2bag-chatbot-be/internal/pkg/logger"
	"farm2bag-chatbot-be/internal/repository/contract"
	"farm2bag-chatbot-be/pkg/cart"
	"farm2bag-chatbot-be/pkg/catalog"
	"farm2bag-chatbot-be/pkg/chatbot"
	"farm2bag-chatbot-be/pkg/intent"
)

// IChatbotService is the request/reply contract exposed to the HTTP layer.
type IChatbotService interface {
	Handle(ctx context.Context, sessionID string, utterance string) (*dto.ChatReply, error)
	Suggest(ctx context.Context, partial string) []catalog.Suggestion
}

// chatbotService dispatches each utterance: classify intent, route to the
// matching handler, produce a structured reply. No handler calls back
// upstream.
type chatbotService struct {
	store     *catalog.Store
	cartRepo  contract.CartRepository
	responder chatbot.Responder
	publisher IPublisherService
	log       logger.ILogger
	waNumber  string

	// sessionLocks serializes cart read-modify-write per session so two
	// concurrent mutations cannot both observe a missing cart.
	sessionLocks sync.Map
}

func NewChatbotService(
	store *catalog.Store,
	cartRepo contract.CartRepository,
	responder chatbot.Responder,
	publisher IPublisherService,
	log logger.ILogger,
	waNumber string,
) IChatbotService {
	return &chatbotService{
		store:     store,
		cartRepo:  cartRepo,
		responder: responder,
		publisher: publisher,
		log:       log,
		waNumber:  waNumber,
	}
}

// Handle processes one utterance for one session.
func (cs *chatbotService) Handle(ctx context.Context, sessionID string, utterance string) (*dto.ChatReply, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return &dto.ChatReply{Error: constant.MsgNoMessageProvided}, nil
	}

	queryType := intent.Classify(utterance)
	cs.log.Debug("CHATBOT", "Classified utterance", map[string]interface{}{
		"session_id": sessionID,
		"intent":     string(queryType),
	})

	switch queryType {
	case intent.OrderTracking:
		return cs.handleOrderTracking(), nil
	case intent.CartView:
		return cs.handleCartView(ctx, sessionID)
	case intent.CartClear:
		return cs.handleCartClear(ctx, sessionID)
	case intent.BuyNow:
		return cs.handleBuyNow(utterance), nil
	case intent.AddToCart:
		return cs.handleAddToCart(ctx, sessionID, utterance)
	case intent.PlaceOrder:
		return cs.handlePlaceOrder(ctx, sessionID)
	case intent.Greeting:
		return &dto.ChatReply{Message: constant.MsgGreeting}, nil
	case intent.Help:
		return &dto.ChatReply{Message: constant.MsgHelp}, nil
	case intent.PriceInquiry, intent.StockInquiry, intent.ProductSearch:
		return cs.handleProductQuery(utterance), nil
	default:
		return cs.handleGeneral(ctx, utterance), nil
	}
}

// Suggest returns autocomplete entries for a partial product name.
func (cs *chatbotService) Suggest(_ context.Context, partial string) []catalog.Suggestion {
	return cs.store.Suggest(partial)
}

func (cs *chatbotService) handleOrderTracking() *dto.ChatReply {
	// Selection is random by design; only membership in the canned set is
	// guaranteed.
	response := constant.OrderTrackingResponses[rand.Intn(len(constant.OrderTrackingResponses))]
	return &dto.ChatReply{
		Message: fmt.Sprintf("%s\n\n💬 For detailed tracking, contact us on WhatsApp: +91 %s", response, cs.waNumber),
	}
}

func (cs *chatbotService) handleCartView(ctx context.Context, sessionID string) (*dto.ChatReply, error) {
	userCart, err := cs.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if userCart == nil {
		return &dto.ChatReply{Message: constant.MsgCartEmpty}, nil
	}

	items, total := userCart.View()
	if len(items) == 0 {
		return &dto.ChatReply{Message: constant.MsgCartEmpty}, nil
	}

	var sb strings.Builder
	sb.WriteString("🛍️ **Your Cart:**\n\n")
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s - ₹%s\n", i+1, item.Product, item.Price))
	}
	sb.WriteString(fmt.Sprintf("\n💰 **Total: ₹%.2f**\n\n", total))
	sb.WriteString("📱 Ready to order? Contact us on WhatsApp to complete your purchase!")

	return &dto.ChatReply{Message: sb.String()}, nil
}

func (cs *chatbotService) handleCartClear(ctx context.Context, sessionID string) (*dto.ChatReply, error) {
	unlock := cs.lockSession(sessionID)
	defer unlock()

	userCart, err := cs.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if userCart != nil {
		userCart.Clear()
		if err := cs.cartRepo.Save(ctx, sessionID, userCart); err != nil {
			return nil, err
		}
	}

	return &dto.ChatReply{Message: constant.MsgCartCleared}, nil
}

func (cs *chatbotService) handleBuyNow(utterance string) *dto.ChatReply {
	productName := intent.StripBuyPhrases(utterance)
	if productName == "" {
		return &dto.ChatReply{Message: "❌ Please specify which product you'd like to buy."}
	}

	product, found := cs.store.Resolve(productName)
	if !found {
		return &dto.ChatReply{Message: fmt.Sprintf("❌ Product '%s' not found. Try searching for it first!", productName)}
	}

	if !product.InStock() {
		return &dto.ChatReply{Message: fmt.Sprintf("😞 Sorry, %s is currently out of stock.", product.Name)}
	}

	info := mapper.ToProductInfo(product)
	orderURL := fmt.Sprintf("https://wa.me/%s?text=%s", cs.waNumber,
		url.QueryEscape(fmt.Sprintf("I want to buy %s", product.Name)))

	return &dto.ChatReply{
		Message: fmt.Sprintf(
			"🛍️ Ready to buy <strong>%s</strong> for ₹%s!<br><br>📱 Complete your purchase via WhatsApp: <a href='%s' target='_blank'>Order Now on WhatsApp</a>",
			info.Product, info.Price, orderURL,
		),
		ProductInfo: info,
	}
}

func (cs *chatbotService) handleAddToCart(ctx context.Context, sessionID string, utterance string) (*dto.ChatReply, error) {
	productName := intent.StripCartPhrases(utterance)
	if productName == "" {
		return &dto.ChatReply{Message: "❌ Please specify which product to add to cart."}, nil
	}

	product, found := cs.store.Resolve(productName)
	if !found {
		return &dto.ChatReply{Message: fmt.Sprintf("❌ Product '%s' not found.", productName)}, nil
	}

	// Availability is checked here, before the cart transition: Add assumes
	// the caller already rejected out-of-stock products.
	if !product.InStock() {
		return &dto.ChatReply{Message: fmt.Sprintf("😞 Sorry, %s is out of stock and cannot be added to cart.", product.Name)}, nil
	}

	unlock := cs.lockSession(sessionID)
	defer unlock()

	userCart, err := cs.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if userCart == nil {
		// Lazily created on first mutation
		userCart = cart.New()
	}

	item := mapper.ToCartItem(product)
	outcome := userCart.Add(item)
	if err := cs.cartRepo.Save(ctx, sessionID, userCart); err != nil {
		return nil, err
	}

	if outcome == cart.AlreadyPresent {
		return &dto.ChatReply{Message: fmt.Sprintf("ℹ️ %s is already in your cart!", product.Name)}, nil
	}

	return &dto.ChatReply{
		Message: fmt.Sprintf("✅ %s added to your cart! (₹%s)\n\n📱 You can view your cart or proceed to checkout.", product.Name, item.Price),
	}, nil
}

func (cs *chatbotService) handlePlaceOrder(ctx context.Context, sessionID string) (*dto.ChatReply, error) {
	unlock := cs.lockSession(sessionID)
	defer unlock()

	userCart, err := cs.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if userCart == nil {
		return &dto.ChatReply{Message: constant.MsgOrderCartEmpty}, nil
	}

	summary, ok := userCart.Checkout()
	if !ok {
		return &dto.ChatReply{Message: constant.MsgOrderCartEmpty}, nil
	}

	var sb strings.Builder
	sb.WriteString("Hello Farm2Bag! I want to place an order:\n\n")
	for i, item := range summary.Items {
		sb.WriteString(fmt.Sprintf("%d. %s - ₹%s\n", i+1, item.Product, item.Price))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: ₹%.2f\n\nPlease confirm my order!", summary.Total))

	whatsappURL := fmt.Sprintf("https://wa.me/%s?text=%s", cs.waNumber, url.QueryEscape(sb.String()))

	cs.publishOrderPlaced(ctx, sessionID, summary, whatsappURL)

	if err := cs.cartRepo.Save(ctx, sessionID, userCart); err != nil {
		return nil, err
	}

	return &dto.ChatReply{
		Message: fmt.Sprintf(
			"🎉 Order prepared! Total: ₹%.2f<br><br>📱 <a href='%s' target='_blank'>Complete Order on WhatsApp</a><br><br>Your cart has been cleared. Thank you for choosing Farm2Bag!",
			summary.Total, whatsappURL,
		),
	}, nil
}

// publishOrderPlaced hands the order summary to the ordering channel. A
// publish failure never fails the checkout; the reply already carries the
// WhatsApp link.
func (cs *chatbotService) publishOrderPlaced(ctx context.Context, sessionID string, summary cart.OrderSummary, whatsappURL string) {
	if cs.publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.OrderPlacedMessage{
		SessionID:   sessionID,
		Items:       summary.Items,
		Total:       summary.Total,
		WhatsAppURL: whatsappURL,
		PlacedAt:    time.Now(),
	})
	if err != nil {
		cs.log.Warn("CHATBOT", "Failed to marshal order event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := cs.publisher.Publish(ctx, payload); err != nil {
		cs.log.Warn("CHATBOT", "Failed to publish order event", map[string]interface{}{"error": err.Error()})
	}
}

func (cs *chatbotService) handleProductQuery(utterance string) *dto.ChatReply {
	if term, ok := intent.ExtractQueryTerm(utterance); ok {
		if product, found := cs.store.Resolve(term); found {
			return productReply(product)
		}
	}
	return &dto.ChatReply{Message: constant.MsgProductQueryMiss}
}

// handleGeneral tries the catalog first, then falls back to the generative
// responder with the domain context preamble. Responder faults degrade to a
// canned message.
func (cs *chatbotService) handleGeneral(ctx context.Context, utterance string) *dto.ChatReply {
	if product, found := cs.store.Resolve(utterance); found {
		return productReply(product)
	}

	prompt := fmt.Sprintf(constant.GeminiContextPromptV1, utterance)
	reply, err := cs.responder.Generate(ctx, prompt)
	if err != nil {
		cs.log.Warn("CHATBOT", "Generative responder failed", map[string]interface{}{"error": err.Error()})
		if chatbot.IsTimeout(err) {
			return &dto.ChatReply{Message: constant.MsgResponderTimeout}
		}
		return &dto.ChatReply{Message: constant.MsgResponderFailure}
	}

	return &dto.ChatReply{Message: strings.TrimSpace(reply)}
}

func productReply(product catalog.Product) *dto.ChatReply {
	info := mapper.ToProductInfo(product)
	return &dto.ChatReply{
		Message:     fmt.Sprintf("🌿 <strong>%s</strong>: ₹%s (%s)", info.Product, info.Price, info.Stock),
		ProductInfo: info,
	}
}

// lockSession acquires the per-session mutation lock and returns its
// release func.
func (cs *chatbotService) lockSession(sessionID string) func() {
	lockAny, _ := cs.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	lock := lockAny.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}
