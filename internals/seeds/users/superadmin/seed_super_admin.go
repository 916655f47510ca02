package superadmin

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"minhaigreja_backend/internals/configs"
	"minhaigreja_backend/internals/constants"
	userModel "minhaigreja_backend/internals/features/users/user/model"
	authHelper "minhaigreja_backend/internals/helpers/auth"
)

// SeedSuperAdmin garante a conta do super admin do plano de controle.
// Credenciais vêm do ambiente; sem SUPER_ADMIN_PASSWORD o seed não roda.
func SeedSuperAdmin(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("SUPER_ADMIN_EMAIL", "admin@minhaigreja.app")))
	password := configs.GetEnv("SUPER_ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("[SEED] ⚠️ SUPER_ADMIN_PASSWORD não definido, pulando seed do super admin")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("[SEED] ❌ falha ao checar super admin: %v", err)
		return
	}
	if count > 0 {
		log.Println("[SEED] super admin já existe, nada a fazer")
		return
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] ❌ falha ao gerar hash do super admin: %v", err)
		return
	}

	admin := &userModel.UserModel{
		Name:         configs.GetEnv("SUPER_ADMIN_NAME", "Super Admin"),
		Email:        email,
		Role:         constants.RoleSuperAdmin,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[SEED] ❌ falha ao criar super admin: %v", err)
		return
	}
	log.Printf("[SEED] ✅ super admin criado (%s)", email)
}
