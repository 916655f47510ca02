package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	lgpdModel "minhaigreja_backend/internals/features/lgpd/model"
)

// LogUserActivity grava uma linha na trilha de auditoria do plano de
// controle. Best-effort: falha de auditoria é logada, nunca derruba a
// operação que a originou.
func LogUserActivity(ctx context.Context, reg *database.Registry, userID uuid.UUID, action, entityType string, entityID uuid.UUID, oldValues, newValues map[string]any, churchID *uuid.UUID, ip, userAgent string) {
	entry := lgpdModel.AuditLogModel{
		UserID:     userID,
		ChurchID:   churchID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
	if oldValues != nil {
		if b, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = b
		}
	}
	if newValues != nil {
		if b, err := json.Marshal(newValues); err == nil {
			entry.NewValues = b
		}
	}

	err := reg.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		log.Printf("[AUDIT] ⚠️ falha ao gravar audit_log (%s %s): %v", action, entityType, err)
	}
}
