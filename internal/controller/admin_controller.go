package controller

import (
	"strconv"
	"time"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboard(ctx *fiber.Ctx) error
	GetContexts(ctx *fiber.Ctx) error
	CreateContext(ctx *fiber.Ctx) error
	ActivateContext(ctx *fiber.Ctx) error
	DeactivateContext(ctx *fiber.Ctx) error
	DeleteContext(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetUsageStats(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("/dashboard", c.GetDashboard)
	h.Get("/contexts", c.GetContexts)
	h.Post("/contexts", c.CreateContext)
	h.Post("/contexts/:contextId/activate", c.ActivateContext)
	h.Post("/contexts/:contextId/deactivate", c.DeactivateContext)
	h.Delete("/contexts/:contextId", c.DeleteContext)
	h.Get("/logs", c.GetLogs)
	h.Get("/usage", c.GetUsageStats)
}

func (c *adminController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

func (c *adminController) GetContexts(ctx *fiber.Ctx) error {
	res, err := c.service.GetContexts(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get prompt contexts", res))
}

func (c *adminController) CreateContext(ctx *fiber.Ctx) error {
	var req dto.CreatePromptContextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateContext(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create prompt context", res))
}

func (c *adminController) ActivateContext(ctx *fiber.Ctx) error {
	contextId, err := uuid.Parse(ctx.Params("contextId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid context id")
	}

	if err := c.service.ActivateContext(ctx.Context(), contextId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success activate prompt context", nil))
}

func (c *adminController) DeactivateContext(ctx *fiber.Ctx) error {
	contextId, err := uuid.Parse(ctx.Params("contextId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid context id")
	}

	if err := c.service.DeactivateContext(ctx.Context(), contextId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success deactivate prompt context", nil))
}

func (c *adminController) DeleteContext(ctx *fiber.Ctx) error {
	contextId, err := uuid.Parse(ctx.Params("contextId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid context id")
	}

	if err := c.service.DeleteContext(ctx.Context(), contextId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete prompt context", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit, _ := strconv.Atoi(ctx.Query("limit", "100"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.service.GetLogs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get system logs", res))
}

func (c *adminController) GetUsageStats(ctx *fiber.Ctx) error {
	days, _ := strconv.Atoi(ctx.Query("days", "30"))
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	res, err := c.service.GetUsageStats(ctx.Context(), since)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get usage stats", res))
}
