package controller

import (
	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/pkg/serverutils"
	"doc-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("message", c.SendMessage)
	h.Get("history", c.History)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res := c.chatService.History()
	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}
