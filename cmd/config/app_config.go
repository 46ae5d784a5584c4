package config

import (
	"os"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/internal/api/handlers"
	"github.com/SiddharthChaturvedii/FoodView/internal/api/routes"
	"github.com/SiddharthChaturvedii/FoodView/internal/middleware"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils/storage"
	"github.com/SiddharthChaturvedii/FoodView/pkg/donation"
	"github.com/SiddharthChaturvedii/FoodView/pkg/engagement"
	"github.com/SiddharthChaturvedii/FoodView/pkg/food"
	"github.com/SiddharthChaturvedii/FoodView/pkg/jwt"
	"github.com/SiddharthChaturvedii/FoodView/pkg/partner"
	"github.com/SiddharthChaturvedii/FoodView/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	engagementRepository := engagement.NewEngagementRepository(db)
	userRepository := user.NewUserRepository(db)
	partnerRepository := partner.NewPartnerRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	foodService := food.NewFoodService(foodRepository, s3)
	donationService := donation.NewDonationService(donationRepository)
	engagementService := engagement.NewEngagementService(engagementRepository)
	userService := user.NewUserService(userRepository, engagementRepository, jwtService)
	partnerService := partner.NewPartnerService(partnerRepository, foodRepository, jwtService, s3)

	// Handler
	authHandler := handlers.NewAuthHandler(userService, partnerService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	engagementHandler := handlers.NewEngagementHandler(engagementService, validator)
	partnerHandler := handlers.NewPartnerHandler(partnerService, validator)
	userHandler := handlers.NewUserHandler(userService, engagementService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		AuthHandler:       authHandler,
		FoodHandler:       foodHandler,
		DonationHandler:   donationHandler,
		EngagementHandler: engagementHandler,
		PartnerHandler:    partnerHandler,
		UserHandler:       userHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
