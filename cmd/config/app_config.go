package config

import (
	"Relief-Aid-Backend/internal/api/handlers"
	"Relief-Aid-Backend/internal/api/routes"
	"Relief-Aid-Backend/internal/middleware"
	"Relief-Aid-Backend/internal/utils"
	"Relief-Aid-Backend/internal/utils/storage"
	"Relief-Aid-Backend/pkg/admin"
	"Relief-Aid-Backend/pkg/donation"
	"Relief-Aid-Backend/pkg/jwt"
	"Relief-Aid-Backend/pkg/payment"
	"Relief-Aid-Backend/pkg/request"
	"Relief-Aid-Backend/pkg/settings"
	"os"
	"time"

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
		TimeZone:   "Asia/Colombo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	donationRepository := donation.NewDonationRepository(db)
	requestRepository := request.NewRequestRepository(db)
	settingsRepository := settings.NewSettingsRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	settingsService := settings.NewSettingsService(settingsRepository)
	donationService := donation.NewDonationService(donationRepository, paymentService, s3)
	requestService := request.NewRequestService(requestRepository, settingsService)
	adminService := admin.NewAdminService(adminRepository, jwtService)

	// Handler
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		DonationHandler: donationHandler,
		RequestHandler:  requestHandler,
		SettingsHandler: settingsHandler,
		AdminHandler:    adminHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
