package middleware

import (
	"strings"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/presenters"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils"
	"github.com/SiddharthChaturvedii/FoodView/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthUser(jwtService jwt.JWTService) fiber.Handler
		AuthPartner(jwtService jwt.JWTService) fiber.Handler
		AuthAny(jwtService jwt.JWTService) fiber.Handler
		AuthOptional(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	allowOrigins := "http://localhost:5173,http://localhost:5174"
	if frontendURL := utils.GetConfig("FRONTEND_URL"); frontendURL != "" {
		allowOrigins += "," + frontendURL
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowCredentials: true,
	})
}

// extractToken reads the session token from the httpOnly cookie set at
// login, falling back to a bearer Authorization header.
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies("token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func (m *middleware) authenticate(c *fiber.Ctx, jwtService jwt.JWTService, wantRole string) error {
	token := extractToken(c)
	if token == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
	}

	subjectID, role, err := jwtService.GetSubjectByToken(token)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	if wantRole != "" && role != wantRole {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedProcessRequest, domain.ErrUserNotAllowed)
	}

	c.Locals("user_id", subjectID)
	c.Locals("role", role)
	return c.Next()
}

func (m *middleware) AuthUser(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return m.authenticate(c, jwtService, domain.RoleUser)
	}
}

func (m *middleware) AuthPartner(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return m.authenticate(c, jwtService, domain.RolePartner)
	}
}

func (m *middleware) AuthAny(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return m.authenticate(c, jwtService, "")
	}
}

// AuthOptional attaches the subject when a valid token is present and
// proceeds as guest otherwise. Used by the public feed.
func (m *middleware) AuthOptional(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Next()
		}

		subjectID, role, err := jwtService.GetSubjectByToken(token)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", subjectID)
		c.Locals("role", role)
		return c.Next()
	}
}
