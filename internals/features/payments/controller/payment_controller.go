// internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	paymentModel "minhaigreja_backend/internals/features/payments/model"
	paymentRepo "minhaigreja_backend/internals/features/payments/repository"
	paymentService "minhaigreja_backend/internals/features/payments/service"
	helper "minhaigreja_backend/internals/helpers"
)

type PaymentController struct {
	Registry *database.Registry
}

func NewPaymentController(reg *database.Registry) *PaymentController {
	return &PaymentController{Registry: reg}
}

// canTouchChurch aplica a regra de acesso cruzado: super_admin passa,
// os demais só enxergam a própria igreja.
func canTouchChurch(c *fiber.Ctx, target uuid.UUID) bool {
	role, _ := c.Locals("userRole").(string)
	own, _ := c.Locals("church_id").(string)
	return constants.CanAccessChurch(role, own, target.String())
}

// ListByChurch — GET /api/payments/church/:churchId (church_admin+)
func (pc *PaymentController) ListByChurch(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("churchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de igreja inválido")
	}
	if !canTouchChurch(c, churchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Acesso negado a esta igreja")
	}

	var payments []paymentModel.PaymentModel
	err = pc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		var ferr error
		payments, ferr = paymentRepo.ListPaymentsByChurch(tx, churchID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", payments, nil)
}

// GenerateCharge — POST /api/payments/church/:churchId/charge (super_admin)
func (pc *PaymentController) GenerateCharge(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("churchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de igreja inválido")
	}

	var body struct {
		Method string `json:"method"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}

	payment, err := paymentService.GenerateMonthlyCharge(c.UserContext(), pc.Registry, churchID, body.Method)
	switch {
	case errors.Is(err, helper.ErrValidation):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Método inválido ou igreja em período de teste")
	case errors.Is(err, helper.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, "Já existe cobrança pendente para este vencimento")
	case errors.Is(err, helper.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Igreja não encontrada")
	case err != nil:
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Cobrança gerada", payment)
}

// Confirm — POST /api/payments/:id/confirm (super_admin)
// Registra a baixa manual de um pagamento (gateway fora do escopo).
func (pc *PaymentController) Confirm(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de pagamento inválido")
	}
	var body struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}

	if err := paymentService.ConfirmPayment(c.UserContext(), pc.Registry, paymentID, body.TransactionID); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pagamento pendente não encontrado")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pagamento confirmado", fiber.Map{"id": paymentID})
}

// Cancel — POST /api/payments/:id/cancel (super_admin)
func (pc *PaymentController) Cancel(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de pagamento inválido")
	}

	err = pc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		return paymentRepo.CancelPayment(tx, paymentID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pagamento pendente não encontrado")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonUpdated(c, "Pagamento cancelado", fiber.Map{"id": paymentID})
}
