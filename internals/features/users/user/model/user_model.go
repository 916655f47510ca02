package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel representa a tabela users no banco compartilhado.
// Email é único no sistema inteiro, não por igreja. Usuário com ChurchID
// pertence a exatamente uma igreja; só super_admin fica sem vínculo.
type UserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email            string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Phone            string     `gorm:"size:20" json:"phone,omitempty"`
	Avatar           string     `gorm:"type:text" json:"avatar,omitempty"`
	Role             string     `gorm:"type:varchar(50);not null" json:"role"`
	ChurchID         *uuid.UUID `gorm:"type:uuid" json:"church_id,omitempty"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	TwoFactorEnabled bool       `gorm:"not null;default:false" json:"two_factor_enabled"`
	PasswordHash     string     `gorm:"type:text;not null" json:"-"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
