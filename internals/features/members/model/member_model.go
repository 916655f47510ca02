// internals/features/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// MemberModel vive no schema do tenant (tabela sem qualificação: o
// search_path da conexão decide a igreja).
type MemberModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID         uuid.UUID      `gorm:"type:uuid;not null" json:"church_id"`
	FirstName        string         `gorm:"size:100;not null" json:"first_name"`
	LastName         string         `gorm:"size:100;not null" json:"last_name"`
	Email            string         `gorm:"size:255" json:"email,omitempty"`
	Phone            string         `gorm:"size:20" json:"phone,omitempty"`
	BirthDate        *time.Time     `gorm:"type:date" json:"birth_date,omitempty"`
	Address          datatypes.JSON `gorm:"type:jsonb" json:"address,omitempty"`
	Photo            string         `gorm:"type:text" json:"photo,omitempty"`
	BaptismDate      *time.Time     `gorm:"type:date" json:"baptism_date,omitempty"`
	MembershipDate   time.Time      `gorm:"type:date;not null;default:CURRENT_DATE" json:"membership_date"`
	IsActive         bool           `gorm:"not null;default:true" json:"is_active"`
	CellGroupID      *uuid.UUID     `gorm:"type:uuid" json:"cell_group_id,omitempty"`
	Ministries       pq.StringArray `gorm:"type:text[]" json:"ministries,omitempty"`
	EmergencyContact datatypes.JSON `gorm:"type:jsonb" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
