// internals/features/payments/service/payment_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	churchModel "minhaigreja_backend/internals/features/churches/model"
	paymentModel "minhaigreja_backend/internals/features/payments/model"
	paymentRepo "minhaigreja_backend/internals/features/payments/repository"
	helper "minhaigreja_backend/internals/helpers"
)

// GenerateMonthlyCharge cria a cobrança do mês para a igreja:
// valor = member_count × monthly_fee, vencimento no dia 10 do mês seguinte.
// Idempotente por vencimento: não duplica cobrança pendente.
func GenerateMonthlyCharge(ctx context.Context, reg *database.Registry, churchID uuid.UUID, method string) (*paymentModel.PaymentModel, error) {
	if method != paymentModel.MethodPix &&
		method != paymentModel.MethodCreditCard &&
		method != paymentModel.MethodBoleto {
		return nil, helper.ErrValidation
	}

	var payment *paymentModel.PaymentModel
	err := reg.WithShared(ctx, func(tx *gorm.DB) error {
		var church churchModel.ChurchModel
		if err := tx.First(&church, "id = ?", churchID).Error; err != nil {
			return err
		}
		if church.SubscriptionStatus == churchModel.SubscriptionTrial {
			// trial não paga
			return helper.ErrValidation
		}

		now := time.Now().UTC()
		dueDate := time.Date(now.Year(), now.Month()+1, 10, 0, 0, 0, 0, time.UTC)

		exists, err := paymentRepo.HasOpenCharge(tx, churchID, dueDate)
		if err != nil {
			return err
		}
		if exists {
			return helper.ErrConflict
		}

		payment = &paymentModel.PaymentModel{
			ChurchID:    church.ID,
			Amount:      float64(church.MemberCount) * church.MonthlyFee,
			MemberCount: church.MemberCount,
			Method:      method,
			Status:      paymentModel.StatusPending,
			DueDate:     dueDate,
		}
		return paymentRepo.CreatePayment(tx, payment)
	})
	if err != nil {
		return nil, helper.FromDBError(err)
	}
	return payment, nil
}

// ConfirmPayment marca como pago e reativa assinatura suspensa.
func ConfirmPayment(ctx context.Context, reg *database.Registry, paymentID uuid.UUID, transactionID string) error {
	err := reg.WithShared(ctx, func(tx *gorm.DB) error {
		if err := paymentRepo.MarkPaymentPaid(tx, paymentID, transactionID); err != nil {
			return err
		}
		payment, err := paymentRepo.FindPaymentByID(tx, paymentID)
		if err != nil {
			return err
		}
		return tx.Model(&churchModel.ChurchModel{}).
			Where("id = ? AND subscription_status IN ?",
				payment.ChurchID,
				[]string{churchModel.SubscriptionSuspended, churchModel.SubscriptionInactive}).
			Update("subscription_status", churchModel.SubscriptionActive).Error
	})
	return helper.FromDBError(err)
}
