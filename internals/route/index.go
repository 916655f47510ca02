// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	database "minhaigreja_backend/internals/databases"
	routeDetails "minhaigreja_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, reg *database.Registry) {
	startTime = time.Now()

	BaseRoutes(app, reg)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, reg)

	log.Println("[INFO] Setting up ChurchRoutes...")
	routeDetails.ChurchRoutes(app, reg)

	log.Println("[INFO] Setting up LgpdRoutes...")
	routeDetails.LgpdRoutes(app, reg)

	log.Println("[INFO] Setting up PaymentRoutes...")
	routeDetails.PaymentRoutes(app, reg)

	log.Println("[INFO] Setting up TenantRoutes...")
	routeDetails.TenantRoutes(app, reg)
}
