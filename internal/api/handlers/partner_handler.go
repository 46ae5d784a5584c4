package handlers

import (
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/pkg/partner"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PartnerHandler interface {
		GetPartnerByID(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
	}

	partnerHandler struct {
		partnerService partner.PartnerService
		validator      *validator.Validate
	}
)

func NewPartnerHandler(partnerService partner.PartnerService, validator *validator.Validate) PartnerHandler {
	return &partnerHandler{
		partnerService: partnerService,
		validator:      validator,
	}
}

func (h *partnerHandler) GetPartnerByID(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.partnerService.GetPartnerByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPartnerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPartner, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPartner, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPartner)
}

func (h *partnerHandler) UpdateProfile(c *fiber.Ctx) error {
	partnerID := c.Locals("user_id").(string)

	req := new(domain.UpdatePartnerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.ProfilePhoto, _ = c.FormFile("profilePhoto")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePartner, err)
	}

	res, err := h.partnerService.UpdateProfile(c.Context(), *req, partnerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPartnerNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdatePartner, err)
		case errors.Is(err, domain.ErrNoFieldsToUpdate):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePartner, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePartner, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePartner)
}
