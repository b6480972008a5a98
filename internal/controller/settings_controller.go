package controller

import (
	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetExcludedTerms(ctx *fiber.Ctx) error
	AddExcludedTerm(ctx *fiber.Ctx) error
	RemoveExcludedTerm(ctx *fiber.Ctx) error
}

type settingsController struct {
	service service.ISettingsService
}

func NewSettingsController(service service.ISettingsService) ISettingsController {
	return &settingsController{service: service}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/excluded-terms", c.GetExcludedTerms)
	h.Post("/excluded-terms", c.AddExcludedTerm)
	h.Delete("/excluded-terms/:termId", c.RemoveExcludedTerm)
}

func (c *settingsController) GetExcludedTerms(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.service.GetExcludedTerms(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get excluded terms", res))
}

func (c *settingsController) AddExcludedTerm(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.AddExcludedTermRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddExcludedTerm(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add excluded term", res))
}

func (c *settingsController) RemoveExcludedTerm(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	termId, err := uuid.Parse(ctx.Params("termId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid term id")
	}

	if err := c.service.RemoveExcludedTerm(ctx.Context(), userId, termId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove excluded term", nil))
}
