package controller

import (
	"ai-triage-be/internal/dto"
	"ai-triage-be/internal/pkg/serverutils"
	"ai-triage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConsultController interface {
	RegisterRoutes(r fiber.Router)
	Turn(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type consultController struct {
	consultService service.IConsultService
}

func NewConsultController(consultService service.IConsultService) IConsultController {
	return &consultController{
		consultService: consultService,
	}
}

func (c *consultController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/consult/v1")
	h.Post("turn", c.Turn)
	h.Get("session/:id/summary", c.Summary)
	h.Get("session/:id/export", c.Export)
	h.Post("session/import", c.Import)
	h.Post("session/:id/reset", c.Reset)
}

func (c *consultController) Turn(ctx *fiber.Ctx) error {
	var req dto.TurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.consultService.Turn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process turn", res))
}

func (c *consultController) Summary(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.consultService.SessionSummary(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session summary", res))
}

func (c *consultController) Export(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.consultService.ExportSession(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export session", res))
}

func (c *consultController) Import(ctx *fiber.Ctx) error {
	var req dto.SessionImportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.consultService.ImportSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import session", res))
}

func (c *consultController) Reset(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.consultService.ResetSession(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset session", res))
}
