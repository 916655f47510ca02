// file: internals/route/details/lgpd_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	lgpdController "minhaigreja_backend/internals/features/lgpd/controller"
	authMw "minhaigreja_backend/internals/middlewares/auth"
)

func LgpdRoutes(app *fiber.App, reg *database.Registry) {
	ctrl := lgpdController.NewLgpdController(reg)

	// titular: qualquer usuário autenticado
	lgpd := app.Group("/api/lgpd", authMw.AuthMiddleware(reg))
	lgpd.Post("/data-requests", ctrl.CreateDataRequest)
	lgpd.Get("/data-requests", ctrl.MyDataRequests)
	lgpd.Get("/consents", ctrl.MyConsents)
	lgpd.Post("/consents/withdraw", ctrl.WithdrawConsent)

	// encarregado (DPO) da igreja: church_admin+
	dpo := lgpd.Group("/church",
		authMw.RoleMiddlewareWithCustomError(
			constants.ChurchAdminAndAbove,
			constants.RoleErrorAdmin("dados LGPD da igreja"),
		),
	)
	dpo.Get("/data-requests", ctrl.ChurchDataRequests)
	dpo.Patch("/data-requests/:id", ctrl.UpdateDataRequest)
	dpo.Get("/audit-logs", ctrl.ChurchAuditLogs)
}
