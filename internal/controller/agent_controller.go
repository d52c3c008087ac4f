package controller

import (
	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/pkg/serverutils"
	"doc-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
}

func (c *agentController) Show(ctx *fiber.Ctx) error {
	agent := c.agentService.Active()
	if agent == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "agent is not ready yet")
	}

	res := dto.AgentResponse{
		Id:          agent.ID,
		Name:        agent.Name,
		Description: agent.Description,
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get active agent", res))
}
