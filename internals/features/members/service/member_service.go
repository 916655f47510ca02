// internals/features/members/service/member_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	churchModel "minhaigreja_backend/internals/features/churches/model"
	memberRepo "minhaigreja_backend/internals/features/members/repository"
)

// SyncMemberCount copia o total de membros ativos do schema do tenant para
// churches.member_count no plano de controle (base da mensalidade).
// Best-effort: falha vira log, nunca derruba a operação que a disparou.
func SyncMemberCount(ctx context.Context, reg *database.Registry, churchID uuid.UUID) {
	var total int64
	err := reg.WithTenant(ctx, churchID, func(tx *gorm.DB) error {
		var cerr error
		total, cerr = memberRepo.CountActiveMembers(tx)
		return cerr
	})
	if err != nil {
		log.Printf("[MEMBERS] ⚠️ falha ao contar membros da igreja %s: %v", churchID, err)
		return
	}

	err = reg.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.Model(&churchModel.ChurchModel{}).
			Where("id = ?", churchID).
			Update("member_count", total).Error
	})
	if err != nil {
		log.Printf("[MEMBERS] ⚠️ falha ao sincronizar member_count da igreja %s: %v", churchID, err)
	}
}
