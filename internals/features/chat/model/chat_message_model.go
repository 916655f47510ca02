// internals/features/chat/model/chat_message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeText   = "text"
	TypeImage  = "image"
	TypeFile   = "file"
	TypeSystem = "system"
)

// ChatMessageModel — mensagem direta (receiver_id) ou de grupo (group_id);
// exatamente um dos dois preenchido.
type ChatMessageModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverID *uuid.UUID `gorm:"type:uuid" json:"receiver_id,omitempty"`
	GroupID    *uuid.UUID `gorm:"type:uuid" json:"group_id,omitempty"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Type       string     `gorm:"size:20;not null;default:'text'" json:"type"`
	FileURL    string     `gorm:"type:text;column:file_url" json:"file_url,omitempty"`
	FileName   string     `gorm:"type:text;column:file_name" json:"file_name,omitempty"`
	IsRead     bool       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
