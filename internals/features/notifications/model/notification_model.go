// internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeError   = "error"
	TypeSuccess = "success"
)

type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null" json:"church_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:20;not null;default:'info'" json:"type"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	ActionURL string    `gorm:"type:text;column:action_url" json:"action_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
