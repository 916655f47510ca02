// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	database "minhaigreja_backend/internals/databases"
	authController "minhaigreja_backend/internals/features/users/auth/controller"
	authMw "minhaigreja_backend/internals/middlewares/auth"
	middleware "minhaigreja_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, reg *database.Registry) {
	ctrl := authController.NewAuthController(reg)

	auth := app.Group("/api/auth")
	auth.Post("/login", middleware.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)

	protected := auth.Group("", authMw.AuthMiddleware(reg))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
	protected.Patch("/password", ctrl.ChangePassword)
}
