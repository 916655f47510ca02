package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	database "minhaigreja_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, reg *database.Registry) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API MinhaIgreja no ar 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := reg.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
