// internals/features/notifications/repository/notification_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "minhaigreja_backend/internals/features/notifications/model"
)

func CreateNotification(tx *gorm.DB, n *notifModel.NotificationModel) error {
	return tx.Create(n).Error
}

func ListNotifications(tx *gorm.DB, userID uuid.UUID, onlyUnread bool, limit int) ([]notifModel.NotificationModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := tx.Where("user_id = ?", userID)
	if onlyUnread {
		q = q.Where("is_read = false")
	}
	var notifs []notifModel.NotificationModel
	err := q.Order("created_at DESC").Limit(limit).Find(&notifs).Error
	return notifs, err
}

func MarkNotificationRead(tx *gorm.DB, userID, notifID uuid.UUID) error {
	res := tx.Model(&notifModel.NotificationModel{}).
		Where("id = ? AND user_id = ?", notifID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func MarkAllRead(tx *gorm.DB, userID uuid.UUID) (int64, error) {
	res := tx.Model(&notifModel.NotificationModel{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
