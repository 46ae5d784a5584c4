package handlers

import (
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/pkg/donation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		ClaimDonation(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) ClaimDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("foodId")

	if foodID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimDonation, domain.ErrFoodNotFound)
	}

	req := new(domain.ClaimDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimDonation, domain.ErrInvalidClaimRole)
	}

	res, err := h.donationService.ClaimDonation(c.Context(), foodID, userID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedClaimDonation, err)
		case errors.Is(err, domain.ErrDonationUnavailable):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedClaimDonation, err)
		case errors.Is(err, domain.ErrInvalidClaimRole):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimDonation, err)
		case errors.Is(err, domain.ErrAccountNotFound):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedClaimDonation, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedClaimDonation, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClaimDonation)
}
