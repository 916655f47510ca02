// internals/features/lgpd/repository/lgpd_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lgpdModel "minhaigreja_backend/internals/features/lgpd/model"
)

/* ====================== DATA REQUESTS ====================== */

func CreateDataRequest(db *gorm.DB, req *lgpdModel.DataRequestModel) error {
	return db.Create(req).Error
}

func FindDataRequestByID(db *gorm.DB, id uuid.UUID) (*lgpdModel.DataRequestModel, error) {
	var req lgpdModel.DataRequestModel
	if err := db.First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func ListDataRequestsByUser(db *gorm.DB, userID uuid.UUID) ([]lgpdModel.DataRequestModel, error) {
	var reqs []lgpdModel.DataRequestModel
	err := db.Where("user_id = ?", userID).Order("request_date DESC").Find(&reqs).Error
	return reqs, err
}

func ListDataRequestsByChurch(db *gorm.DB, churchID uuid.UUID) ([]lgpdModel.DataRequestModel, error) {
	var reqs []lgpdModel.DataRequestModel
	err := db.Where("church_id = ?", churchID).Order("request_date DESC").Find(&reqs).Error
	return reqs, err
}

func UpdateDataRequestStatus(db *gorm.DB, id uuid.UUID, status, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	if status == lgpdModel.DataRequestCompleted || status == lgpdModel.DataRequestDenied {
		now := time.Now().UTC()
		updates["completed_date"] = &now
	}
	res := db.Model(&lgpdModel.DataRequestModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ====================== CONSENT RECORDS ====================== */

func ListConsentsByUser(db *gorm.DB, userID uuid.UUID) ([]lgpdModel.ConsentRecordModel, error) {
	var consents []lgpdModel.ConsentRecordModel
	err := db.Where("user_id = ?", userID).Order("consent_date DESC").Find(&consents).Error
	return consents, err
}

// WithdrawConsent preenche withdrawn_date nos registros ativos daquele
// propósito. Nenhuma outra coluna muda (registro append-only).
func WithdrawConsent(db *gorm.DB, userID uuid.UUID, purpose string) (int64, error) {
	res := db.Model(&lgpdModel.ConsentRecordModel{}).
		Where("user_id = ? AND purpose = ? AND withdrawn_date IS NULL", userID, purpose).
		Update("withdrawn_date", time.Now().UTC())
	return res.RowsAffected, res.Error
}

/* ====================== AUDIT LOGS ====================== */

func ListAuditLogsByChurch(db *gorm.DB, churchID uuid.UUID, limit int) ([]lgpdModel.AuditLogModel, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var logs []lgpdModel.AuditLogModel
	err := db.Where("church_id = ?", churchID).Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
