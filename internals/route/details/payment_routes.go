// file: internals/route/details/payment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	paymentController "minhaigreja_backend/internals/features/payments/controller"
	authMw "minhaigreja_backend/internals/middlewares/auth"
)

func PaymentRoutes(app *fiber.App, reg *database.Registry) {
	ctrl := paymentController.NewPaymentController(reg)

	payments := app.Group("/api/payments", authMw.AuthMiddleware(reg))

	// church_admin vê a própria igreja; super_admin vê qualquer uma
	payments.Get("/church/:churchId",
		authMw.RoleMiddlewareWithCustomError(
			constants.ChurchAdminAndAbove,
			constants.RoleErrorAdmin("mensalidades"),
		),
		ctrl.ListByChurch,
	)

	// operações de cobrança são do plano de controle
	super := authMw.RoleMiddlewareWithCustomError(
		constants.SuperAdminOnly,
		constants.RoleErrorSuperAdmin("cobrança"),
	)
	payments.Post("/church/:churchId/charge", super, ctrl.GenerateCharge)
	payments.Post("/:id/confirm", super, ctrl.Confirm)
	payments.Post("/:id/cancel", super, ctrl.Cancel)
}
