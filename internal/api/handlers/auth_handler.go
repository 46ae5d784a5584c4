package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils"
	"github.com/SiddharthChaturvedii/FoodView/pkg/partner"
	"github.com/SiddharthChaturvedii/FoodView/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		RegisterUser(c *fiber.Ctx) error
		LoginUser(c *fiber.Ctx) error
		LogoutUser(c *fiber.Ctx) error
		RegisterPartner(c *fiber.Ctx) error
		LoginPartner(c *fiber.Ctx) error
		LogoutPartner(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	authHandler struct {
		userService    user.UserService
		partnerService partner.PartnerService
		validator      *validator.Validate
	}
)

func NewAuthHandler(userService user.UserService, partnerService partner.PartnerService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		userService:    userService,
		partnerService: partnerService,
		validator:      validator,
	}
}

func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   strings.HasPrefix(utils.GetConfig("FRONTEND_URL"), "https"),
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
}

func (h *authHandler) RegisterUser(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRegisterUser, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegisterUser, nil)
	}

	setAuthCookie(c, res.Token)
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterUser)
}

func (h *authHandler) LoginUser(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginUser, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginUser, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLoginUser, nil)
	}

	setAuthCookie(c, res.Token)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLoginUser)
}

func (h *authHandler) LogoutUser(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogoutUser)
}

func (h *authHandler) RegisterPartner(c *fiber.Ctx) error {
	req := new(domain.RegisterPartnerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterPartner, err)
	}

	res, err := h.partnerService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrPartnerAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRegisterPartner, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegisterPartner, nil)
	}

	setAuthCookie(c, res.Token)
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterPartner)
}

func (h *authHandler) LoginPartner(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginPartner, err)
	}

	res, err := h.partnerService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginPartner, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLoginPartner, nil)
	}

	setAuthCookie(c, res.Token)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLoginPartner)
}

func (h *authHandler) LogoutPartner(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogoutPartner)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	subjectID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	var (
		res domain.MeResponse
		err error
	)
	switch role {
	case domain.RoleUser:
		res, err = h.userService.Me(c.Context(), subjectID)
	case domain.RolePartner:
		res, err = h.partnerService.Me(c.Context(), subjectID)
	default:
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetMe, domain.ErrUserNotAllowed)
	}

	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMe, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}
