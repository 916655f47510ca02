package service

import (
	"context"

	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	churchModel "minhaigreja_backend/internals/features/churches/model"
	helper "minhaigreja_backend/internals/helpers"
)

// ResolveChurchBySubdomain resolve a chave de roteamento para uma igreja
// ativa no plano de controle.
//
//   - subdomínio reservado (www/admin) → (nil, nil): "sem contexto de
//     tenant", segue para o fluxo administrativo, não é erro
//   - formato inválido → ErrValidation (nenhum lookup é feito)
//   - não existe ou inativa → ErrNotFound
func ResolveChurchBySubdomain(ctx context.Context, reg *database.Registry, subdomain string) (*churchModel.ChurchModel, error) {
	key := helper.NormalizeSubdomain(subdomain)
	if key == "" || helper.IsReservedSubdomain(key) {
		return nil, nil
	}
	if !helper.IsValidSubdomain(key) {
		return nil, helper.ErrValidation
	}

	var church churchModel.ChurchModel
	err := reg.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.Where("subdomain = ? AND is_active = true", key).First(&church).Error
	})
	if err != nil {
		return nil, helper.FromDBError(err)
	}
	return &church, nil
}
