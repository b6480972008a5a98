package controller

import (
	"strconv"
	"strings"

	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDatasetController interface {
	RegisterRoutes(r fiber.Router)
	GetEntityDetail(ctx *fiber.Ctx) error
}

type datasetController struct {
	service service.IDatasetService
}

func NewDatasetController(service service.IDatasetService) IDatasetController {
	return &datasetController{service: service}
}

func (c *datasetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/data/v1")
	h.Use(serverutils.JwtMiddleware)
	// :id accepts a single id or a comma-separated list, matching the
	// reference blocks the chat metadata carries
	h.Get("/:kind/:id", c.GetEntityDetail)
}

func (c *datasetController) GetEntityDetail(ctx *fiber.Ctx) error {
	kind := ctx.Params("kind")

	ids, err := parseIdList(ctx.Params("id"))
	if err != nil || len(ids) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id parameter")
	}

	res, err := c.service.GetEntityDetail(ctx.Context(), kind, ids)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get entity detail", res))
}

func parseIdList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
