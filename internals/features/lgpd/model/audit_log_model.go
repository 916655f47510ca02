package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel — trilha de auditoria append-only do plano de controle.
// Nunca sofre UPDATE nem DELETE (exigência de conformidade).
type AuditLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	ChurchID   *uuid.UUID     `gorm:"type:uuid" json:"church_id,omitempty"`
	Action     string         `gorm:"size:255;not null" json:"action"`
	EntityType string         `gorm:"size:100;not null" json:"entity_type"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null" json:"entity_id"`
	OldValues  datatypes.JSON `gorm:"type:jsonb" json:"old_values,omitempty"`
	NewValues  datatypes.JSON `gorm:"type:jsonb" json:"new_values,omitempty"`
	IPAddress  string         `gorm:"type:inet" json:"ip_address,omitempty"`
	UserAgent  string         `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
