// file: internals/route/details/church_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	churchController "minhaigreja_backend/internals/features/churches/controller"
	authMw "minhaigreja_backend/internals/middlewares/auth"
	middleware "minhaigreja_backend/internals/middlewares"
)

func ChurchRoutes(app *fiber.App, reg *database.Registry) {
	ctrl := churchController.NewChurchController(reg)

	// públicas: cadastro e resolução de subdomínio
	churches := app.Group("/api/churches")
	churches.Post("/register", middleware.RegisterRateLimiter(), ctrl.Register)
	churches.Get("/by-subdomain/:subdomain", ctrl.BySubdomain)

	// plano de controle: só super_admin
	admin := app.Group("/api/admin/churches",
		authMw.AuthMiddleware(reg),
		authMw.RoleMiddlewareWithCustomError(
			constants.SuperAdminOnly,
			constants.RoleErrorSuperAdmin("administração de igrejas"),
		),
	)
	admin.Get("/", ctrl.List)
	admin.Post("/:id/repair-schema", ctrl.RepairSchema)
	admin.Delete("/:id", ctrl.Delete)
}
