// internals/features/payments/repository/payment_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "minhaigreja_backend/internals/features/payments/model"
)

func CreatePayment(db *gorm.DB, p *paymentModel.PaymentModel) error {
	return db.Create(p).Error
}

func FindPaymentByID(db *gorm.DB, id uuid.UUID) (*paymentModel.PaymentModel, error) {
	var p paymentModel.PaymentModel
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func ListPaymentsByChurch(db *gorm.DB, churchID uuid.UUID) ([]paymentModel.PaymentModel, error) {
	var payments []paymentModel.PaymentModel
	err := db.Where("church_id = ?", churchID).Order("due_date DESC").Find(&payments).Error
	return payments, err
}

// HasOpenCharge — já existe cobrança pendente para o mesmo vencimento?
func HasOpenCharge(db *gorm.DB, churchID uuid.UUID, dueDate time.Time) (bool, error) {
	var count int64
	err := db.Model(&paymentModel.PaymentModel{}).
		Where("church_id = ? AND due_date = ? AND status = ?",
			churchID, dueDate.Format("2006-01-02"), paymentModel.StatusPending).
		Count(&count).Error
	return count > 0, err
}

func MarkPaymentPaid(db *gorm.DB, id uuid.UUID, transactionID string) error {
	res := db.Model(&paymentModel.PaymentModel{}).
		Where("id = ? AND status = ?", id, paymentModel.StatusPending).
		Updates(map[string]interface{}{
			"status":         paymentModel.StatusPaid,
			"paid_at":        time.Now().UTC(),
			"transaction_id": transactionID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CancelPayment(db *gorm.DB, id uuid.UUID) error {
	res := db.Model(&paymentModel.PaymentModel{}).
		Where("id = ? AND status = ?", id, paymentModel.StatusPending).
		Update("status", paymentModel.StatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
