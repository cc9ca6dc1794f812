package routes

import (
	"Relief-Aid-Backend/internal/api/handlers"
	"Relief-Aid-Backend/internal/middleware"
	"Relief-Aid-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	DonationHandler handlers.DonationHandler
	RequestHandler  handlers.RequestHandler
	SettingsHandler handlers.SettingsHandler
	AdminHandler    handlers.AdminHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.PublicRoute()
	c.AdminRoute()
}

func (c *Config) PublicRoute() {
	c.App.Get("/packages", c.DonationHandler.GetPackages)
	c.App.Get("/donations/total", c.DonationHandler.GetDonationStats)
	c.App.Get("/requests", c.RequestHandler.GetRequests)
	c.App.Post("/requests", c.RequestHandler.SubmitRequest)
	c.App.Post("/create-payment", c.DonationHandler.CreatePayment)
}

func (c *Config) AdminRoute() {
	c.App.Post("/admin/login", c.AdminHandler.Login)

	admin := c.App.Group("/admin", c.Middleware.AuthMiddleware(c.JWTService))
	{
		admin.Get("/donations", c.DonationHandler.GetAllDonations)
		admin.Post("/requests/:id/approve", c.RequestHandler.ApproveRequest)
		admin.Get("/settings", c.SettingsHandler.GetSettings)
		admin.Post("/settings", c.SettingsHandler.UpdateSettings)
		admin.Post("/packages", c.DonationHandler.CreatePackage)
		admin.Post("/packages/image", c.DonationHandler.UploadPackageImage)
	}
}
