package controller

import (
	"research-agent-be/internal/dto"
	"research-agent-be/internal/pkg/serverutils"
	"research-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	ListCompanies(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type researchController struct {
	researchService service.IResearchService
}

func NewResearchController(researchService service.IResearchService) IResearchController {
	return &researchController{researchService: researchService}
}

func (c *researchController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/research/v1")
	h.Get("status", c.Status)

	for _, m := range middlewares {
		h.Use(m)
	}
	h.Post("session", c.CreateSession)
	h.Get("session/:id", c.GetSession)
	h.Get("session/:id/history", c.GetChatHistory)
	h.Delete("session/:id", c.DeleteSession)
	h.Post("chat", c.SendChat)
	h.Get("companies", c.ListCompanies)
}

func (c *researchController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.researchService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create research session", res))
}

func (c *researchController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.researchService.GetSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get research session", res))
}

func (c *researchController) GetChatHistory(ctx *fiber.Ctx) error {
	res, err := c.researchService.GetChatHistory(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *researchController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.researchService.DeleteSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete research session", nil))
}

func (c *researchController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.researchService.SendChat(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *researchController) ListCompanies(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list companies", c.researchService.ListCompanies(ctx.Context())))
}

func (c *researchController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Agent status", c.researchService.AgentStatus(ctx.Context())))
}
