package handlers

import (
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/pkg/food"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		CreateFood(c *fiber.Ctx) error
		GetFeed(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	subjectID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.CreateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Video, _ = c.FormFile("video")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	res, err := h.foodService.CreateFood(c.Context(), *req, subjectID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingDonationFields),
			errors.Is(err, domain.ErrInvalidExpiryDate),
			errors.Is(err, domain.ErrInvalidLocation),
			errors.Is(err, domain.ErrVideoRequired),
			errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateFood, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFood)
}

// GetFeed serves the public feed. The filter mode is explicit: "all"
// (default) returns every item, "available" hides expired or claimed
// donations.
func (h *foodHandler) GetFeed(c *fiber.Ctx) error {
	mode := c.Query("feed", domain.FeedModeAll)

	res, err := h.foodService.GetFeed(c.Context(), mode)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFeedMode) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFeed, nil)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"foodItems": res,
	}, fiber.StatusOK, domain.MessageSuccessGetFeed)
}
