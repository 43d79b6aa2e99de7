package controller

import (
	"time"

	"farm2bag-chatbot-be/internal/dto"
	"farm2bag-chatbot-be/internal/pkg/serverutils"
	"farm2bag-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionCookieName = "chat_session_id"

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	GetMessage(ctx *fiber.Ctx) error
	PostMessage(ctx *fiber.Ctx) error
	Suggestions(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("message", c.GetMessage)
	h.Post("message", c.PostMessage)
	h.Get("suggestions", c.Suggestions)
}

// GetMessage handles the legacy widget contract: the utterance arrives as
// the "product" query parameter and the reply body is the raw discriminated
// payload, not the standard envelope.
func (c *chatbotController) GetMessage(ctx *fiber.Ctx) error {
	sessionID := c.resolveSessionID(ctx, "")

	reply, err := c.chatbotService.Handle(ctx.Context(), sessionID, ctx.Query("product"))
	if err != nil {
		return err
	}

	return ctx.JSON(reply)
}

func (c *chatbotController) PostMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sessionID := c.resolveSessionID(ctx, req.SessionID)

	reply, err := c.chatbotService.Handle(ctx.Context(), sessionID, req.Message)
	if err != nil {
		return err
	}

	return ctx.JSON(reply)
}

func (c *chatbotController) Suggestions(ctx *fiber.Ctx) error {
	suggestions := c.chatbotService.Suggest(ctx.Context(), ctx.Query("q"))
	return ctx.JSON(serverutils.SuccessResponse("Success fetching suggestions", suggestions))
}

// resolveSessionID picks the cart session key: explicit request value
// first, then the session cookie, otherwise a freshly minted id that is
// set as a cookie for subsequent requests.
func (c *chatbotController) resolveSessionID(ctx *fiber.Ctx, explicit string) string {
	if explicit != "" {
		return explicit
	}

	if cookie := ctx.Cookies(sessionCookieName); cookie != "" {
		return cookie
	}

	sessionID := uuid.NewString()
	ctx.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Expires:  time.Now().Add(1 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sessionID
}
