package handlers

import (
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/pkg/engagement"
	"github.com/SiddharthChaturvedii/FoodView/pkg/user"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		GetProfile(c *fiber.Ctx) error
		GetLikedFoods(c *fiber.Ctx) error
	}

	userHandler struct {
		userService       user.UserService
		engagementService engagement.EngagementService
	}
)

func NewUserHandler(userService user.UserService, engagementService engagement.EngagementService) UserHandler {
	return &userHandler{
		userService:       userService,
		engagementService: engagementService,
	}
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *userHandler) GetLikedFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.engagementService.GetLikedFoods(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLiked, nil)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"likedFoods": res,
	}, fiber.StatusOK, domain.MessageSuccessGetLiked)
}
