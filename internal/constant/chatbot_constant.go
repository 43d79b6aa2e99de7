package constant

// GeminiContextPromptV1 wraps a freeform user query with the store's domain
// context before handing it to the generative responder. The single %s is
// the raw utterance.
const GeminiContextPromptV1 = `You are Farm2Bag's helpful agricultural assistant. You help farmers and customers with:
- Product information about fruits and vegetables
- Agricultural advice and farming tips
- Order and delivery support
- General farming guidance

User query: %s

Respond in a friendly, helpful manner. Keep responses concise and practical.`

const (
	MsgNoMessageProvided = "No message provided."

	MsgGreeting = "🌾 Hello! Welcome to Farm2Bag! I'm here to help you with fresh fruits and vegetables. You can:\n\n🔍 Search for products\n🛒 Add items to cart\n💳 Place orders\n📦 Track deliveries\n🌱 Get farming advice\n\nWhat would you like to do today?"

	MsgHelp = `🌾 **Farm2Bag Commands:**

🔍 **Product Search:**
- "Show me apples"
- "Price of bananas"
- "Stock of mangoes"

🛒 **Cart Management:**
- "Add apple to cart"
- "View my cart"
- "Clear cart"

💳 **Orders:**
- "Buy now [product]"
- "Place order"
- "Track my order"

🌱 **General:**
- Ask about farming tips
- Product recommendations
- Agricultural advice

Just type naturally - I'll understand! 😊`

	MsgProductQueryMiss = "🤔 I couldn't find that product. Try searching with different keywords or ask me for help!"
	MsgCartEmpty        = "🛒 Your cart is empty. Browse our fresh products and add some!"
	MsgCartCleared      = "🗑️ Your cart has been cleared!"
	MsgOrderCartEmpty   = "🛒 Your cart is empty. Please add items before placing an order."

	MsgResponderTimeout = "⏰ Response taking longer than expected. Please try again."
	MsgResponderFailure = "🤖 I'm experiencing some technical difficulties. Please try again in a moment."
)

// OrderTrackingResponses is the fixed canned set for order-tracking
// replies. The selection policy is random by design; callers must not
// depend on a specific choice.
var OrderTrackingResponses = []string{
	"📦 Your order is being prepared at our farm. Expected delivery: 2-3 days.",
	"🚛 Your order is out for delivery! You should receive it today.",
	"✅ Your order was delivered successfully. Thank you for choosing Farm2Bag!",
	"📋 We're processing your order. You'll receive tracking details via SMS/WhatsApp soon.",
}
