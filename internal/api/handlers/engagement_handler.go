package handlers

import (
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/pkg/engagement"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EngagementHandler interface {
		LikeFood(c *fiber.Ctx) error
		SaveFood(c *fiber.Ctx) error
		GetSavedFoods(c *fiber.Ctx) error
	}

	engagementHandler struct {
		engagementService engagement.EngagementService
		validator         *validator.Validate
	}
)

func NewEngagementHandler(engagementService engagement.EngagementService, validator *validator.Validate) EngagementHandler {
	return &engagementHandler{
		engagementService: engagementService,
		validator:         validator,
	}
}

func (h *engagementHandler) LikeFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ToggleEngagementRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	res, err := h.engagementService.ToggleLike(c.Context(), userID, req.FoodID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleLike, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleLike, nil)
		}
	}

	message := domain.MessageSuccessUnlikeFood
	code := fiber.StatusOK
	if res.IsLiked {
		message = domain.MessageSuccessLikeFood
		code = fiber.StatusCreated
	}

	return presenters.SuccessResponse(c, res, code, message)
}

func (h *engagementHandler) SaveFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ToggleEngagementRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
	}

	res, err := h.engagementService.ToggleSave(c.Context(), userID, req.FoodID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleSave, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleSave, nil)
		}
	}

	message := domain.MessageSuccessUnsaveFood
	code := fiber.StatusOK
	if res.IsSaved {
		message = domain.MessageSuccessSaveFood
		code = fiber.StatusCreated
	}

	return presenters.SuccessResponse(c, res, code, message)
}

func (h *engagementHandler) GetSavedFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.engagementService.GetSavedFoods(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSaved, nil)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"savedFoods": res,
	}, fiber.StatusOK, domain.MessageSuccessGetSaved)
}
