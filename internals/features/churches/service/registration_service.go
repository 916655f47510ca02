package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	churchDTO "minhaigreja_backend/internals/features/churches/dto"
	churchModel "minhaigreja_backend/internals/features/churches/model"
	lgpdModel "minhaigreja_backend/internals/features/lgpd/model"
	userModel "minhaigreja_backend/internals/features/users/user/model"
	helper "minhaigreja_backend/internals/helpers"
	authHelper "minhaigreja_backend/internals/helpers/auth"
)

// Orquestrador de cadastro de igreja.
//
// Uma única transação no plano de controle cobre: igreja → admin →
// admin_user_id → consentimentos. Qualquer falha no meio desfaz tudo —
// tentativa falhada não deixa linha nenhuma.
//
// O schema do tenant só é provisionado DEPOIS do commit. Se o
// provisionamento falhar, a linha da igreja é válida e o reparo é
// re-executar o provisionamento (idempotente) — nunca tratamos como fatal.

// RegisterChurch executa o fluxo completo de onboarding.
func RegisterChurch(ctx context.Context, reg *database.Registry, req *churchDTO.RegisterChurchRequest, ip, userAgent string) (*churchDTO.RegisterChurchResponse, error) {
	db, err := reg.Shared()
	if err != nil {
		return nil, helper.ErrTransientStore
	}
	db = db.WithContext(ctx)

	// 1) Unicidade de subdomínio e email do admin — checagem antecipada para
	// responder 409 amigável; a garantia real é o unique index no commit.
	var count int64
	if err := db.Model(&churchModel.ChurchModel{}).Where("subdomain = ?", req.Subdomain).Count(&count).Error; err != nil {
		return nil, helper.FromDBError(err)
	}
	if count > 0 {
		return nil, helper.ErrConflict
	}
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", req.AdminEmail).Count(&count).Error; err != nil {
		return nil, helper.FromDBError(err)
	}
	if count > 0 {
		return nil, helper.ErrConflict
	}

	church := churchModel.ChurchModel{
		Name:               req.Name,
		Subdomain:          req.Subdomain,
		Address:            req.Address,
		Phone:              req.Phone,
		Email:              req.Email,
		IsActive:           true,
		SubscriptionStatus: churchModel.SubscriptionTrial,
		MemberCount:        0,
		MonthlyFee:         0,
	}
	var admin userModel.UserModel

	// 2..7) Transação única no plano de controle
	err = db.Transaction(func(tx *gorm.DB) error {
		// 3) igreja em trial, sem membros, sem mensalidade
		if err := tx.Create(&church).Error; err != nil {
			return err
		}

		// 4) hash + admin da igreja
		hash, err := authHelper.HashPassword(req.AdminPassword)
		if err != nil {
			return err
		}
		admin = userModel.UserModel{
			Email:        req.AdminEmail,
			Name:         req.AdminName,
			Role:         constants.RoleChurchAdmin,
			ChurchID:     &church.ID,
			IsActive:     true,
			PasswordHash: hash,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		// 5) amarra o admin na igreja
		if err := tx.Model(&churchModel.ChurchModel{}).
			Where("id = ?", church.ID).
			Update("admin_user_id", admin.ID).Error; err != nil {
			return err
		}

		// 6) um consentimento por finalidade obrigatória, com IP/user-agent
		now := time.Now().UTC()
		for _, purpose := range constants.ConsentPurposes {
			consent := lgpdModel.ConsentRecordModel{
				UserID:       admin.ID,
				ChurchID:     church.ID,
				Purpose:      purpose,
				ConsentGiven: true,
				ConsentDate:  now,
				IPAddress:    ip,
				UserAgent:    userAgent,
			}
			if err := tx.Create(&consent).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// corrida no subdomínio/email perde no commit com unique_violation
		return nil, helper.FromDBError(err)
	}

	resp := &churchDTO.RegisterChurchResponse{
		ChurchID:    church.ID,
		Subdomain:   church.Subdomain,
		AdminUserID: admin.ID,
		SchemaReady: true,
		Message:     "Igreja registrada com sucesso! Você receberá um email de confirmação em breve.",
	}

	// 8) provisionamento do schema — só depois do commit
	if err := database.CreateTenantSchema(ctx, reg, church.ID); err != nil {
		log.Printf("[REGISTER] ⚠️ igreja %s criada mas schema pendente: %v", church.ID, err)
		resp.SchemaReady = false
		resp.Message = "Igreja registrada. O provisionamento do ambiente ainda está pendente e será concluído automaticamente."
		return resp, helper.ErrPartialProvisioning
	}
	return resp, nil
}

// RepairChurchSchema é o caminho de reparo do estado inconsistente
// recuperável (igreja commitada, schema ausente). Seguro repetir.
func RepairChurchSchema(ctx context.Context, reg *database.Registry, churchID uuid.UUID) error {
	var church churchModel.ChurchModel
	err := reg.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.First(&church, "id = ?", churchID).Error
	})
	if err != nil {
		return helper.FromDBError(err)
	}
	return database.CreateTenantSchema(ctx, reg, church.ID)
}

// RemoveChurch apaga a igreja do plano de controle e derruba o schema do
// tenant com todos os dados. Gate de super_admin fica na rota.
func RemoveChurch(ctx context.Context, reg *database.Registry, churchID uuid.UUID) error {
	err := reg.WithShared(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ?", churchID).Delete(&churchModel.ChurchModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return helper.FromDBError(err)
	}
	if err := database.DropTenantSchema(ctx, reg, churchID); err != nil {
		return err
	}
	return nil
}
