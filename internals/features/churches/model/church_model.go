package model

import (
	"time"

	"github.com/google/uuid"
)

// Status de assinatura possíveis (CHECK no banco)
const (
	SubscriptionTrial     = "trial"
	SubscriptionActive    = "active"
	SubscriptionInactive  = "inactive"
	SubscriptionSuspended = "suspended"
)

// ChurchModel representa a tabela churches no banco compartilhado.
// O subdomínio é único e imutável depois de atribuído.
type ChurchModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	Subdomain          string     `gorm:"size:100;uniqueIndex;not null" json:"subdomain"`
	Address            string     `gorm:"type:text;not null" json:"address"`
	Phone              string     `gorm:"size:20" json:"phone"`
	Email              string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive           bool       `gorm:"not null;default:true" json:"is_active"`
	SubscriptionStatus string     `gorm:"type:varchar(20);not null;default:'trial'" json:"subscription_status"`
	MemberCount        int        `gorm:"not null;default:0" json:"member_count"`
	MonthlyFee         float64    `gorm:"type:decimal(10,2);not null;default:0" json:"monthly_fee"`
	AdminUserID        *uuid.UUID `gorm:"type:uuid" json:"admin_user_id,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ChurchModel) TableName() string {
	return "churches"
}
