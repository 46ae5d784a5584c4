package routes

import (
	"github.com/SiddharthChaturvedii/FoodView/internal/api/handlers"
	"github.com/SiddharthChaturvedii/FoodView/internal/middleware"
	"github.com/SiddharthChaturvedii/FoodView/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	AuthHandler       handlers.AuthHandler
	FoodHandler       handlers.FoodHandler
	DonationHandler   handlers.DonationHandler
	EngagementHandler handlers.EngagementHandler
	PartnerHandler    handlers.PartnerHandler
	UserHandler       handlers.UserHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Food()
	c.FoodPartner()
	c.User()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/user/register", c.AuthHandler.RegisterUser)
		auth.Post("/user/login", c.AuthHandler.LoginUser)
		auth.Get("/user/logout", c.AuthHandler.LogoutUser)
		auth.Post("/food-partner/register", c.AuthHandler.RegisterPartner)
		auth.Post("/food-partner/login", c.AuthHandler.LoginPartner)
		auth.Get("/food-partner/logout", c.AuthHandler.LogoutPartner)
		auth.Get("/me", c.Middleware.AuthAny(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) Food() {
	food := c.App.Group("/api/food")
	{
		food.Post("", c.Middleware.AuthAny(c.JWTService), c.FoodHandler.CreateFood)
		food.Get("", c.Middleware.AuthOptional(c.JWTService), c.FoodHandler.GetFeed)
		food.Post("/like", c.Middleware.AuthUser(c.JWTService), c.EngagementHandler.LikeFood)
		food.Post("/save", c.Middleware.AuthUser(c.JWTService), c.EngagementHandler.SaveFood)
		food.Get("/save", c.Middleware.AuthUser(c.JWTService), c.EngagementHandler.GetSavedFoods)
		food.Post("/claim/:foodId", c.Middleware.AuthUser(c.JWTService), c.DonationHandler.ClaimDonation)
	}
}

func (c *Config) FoodPartner() {
	partner := c.App.Group("/api/food-partner")
	{
		partner.Put("/profile", c.Middleware.AuthPartner(c.JWTService), c.PartnerHandler.UpdateProfile)
		partner.Get("/:id", c.Middleware.AuthAny(c.JWTService), c.PartnerHandler.GetPartnerByID)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/user", c.Middleware.AuthUser(c.JWTService))
	{
		user.Get("/profile", c.UserHandler.GetProfile)
		user.Get("/liked", c.UserHandler.GetLikedFoods)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
