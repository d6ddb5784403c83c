package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scholarship-info-be/internal/dto"
	"scholarship-info-be/internal/pkg/serverutils"
	"scholarship-info-be/internal/service"
)

type IAnnouncementController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Activate(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
}

type announcementController struct {
	announcementService service.IAnnouncementService
}

func NewAnnouncementController(announcementService service.IAnnouncementService) IAnnouncementController {
	return &announcementController{
		announcementService: announcementService,
	}
}

func (c *announcementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/announcement/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)

	// Mutations are admin-only.
	admin := h.Group("", serverutils.AdminOnlyMiddleware)
	admin.Post("", c.Create)
	admin.Put(":id", c.Update)
	admin.Delete(":id", c.Delete)
	admin.Put(":id/activate", c.Activate)
	admin.Put(":id/deactivate", c.Deactivate)
}

func (c *announcementController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.announcementService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create announcement", res))
}

func (c *announcementController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid announcement id")
	}

	res, err := c.announcementService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show announcement", res))
}

func (c *announcementController) List(ctx *fiber.Ctx) error {
	var req dto.ListAnnouncementsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.announcementService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list announcements", res))
}

func (c *announcementController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid announcement id")
	}

	var req dto.UpdateAnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.announcementService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update announcement", res))
}

func (c *announcementController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid announcement id")
	}

	if err := c.announcementService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete announcement", nil))
}

func (c *announcementController) Activate(ctx *fiber.Ctx) error {
	return c.setActive(ctx, true, "Success activate announcement")
}

func (c *announcementController) Deactivate(ctx *fiber.Ctx) error {
	return c.setActive(ctx, false, "Success deactivate announcement")
}

func (c *announcementController) setActive(ctx *fiber.Ctx, active bool, message string) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid announcement id")
	}

	res, err := c.announcementService.SetActive(ctx.Context(), id, active)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(message, res))
}
