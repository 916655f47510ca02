// internals/features/cellgroups/model/cell_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Dias de reunião aceitos (CHECK fica na aplicação; a coluna é VARCHAR)
var ValidMeetingDays = map[string]bool{
	"domingo": true, "segunda": true, "terca": true, "quarta": true,
	"quinta": true, "sexta": true, "sabado": true,
}

// CellGroupModel — célula (pequeno grupo) no schema do tenant.
// current_members é mantido pelo repositório de membros a cada vínculo.
type CellGroupModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID       uuid.UUID      `gorm:"type:uuid;not null" json:"church_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	LeaderID       uuid.UUID      `gorm:"type:uuid;not null" json:"leader_id"`
	CoLeaderID     *uuid.UUID     `gorm:"type:uuid" json:"co_leader_id,omitempty"`
	Address        datatypes.JSON `gorm:"type:jsonb;not null" json:"address"`
	MeetingDay     string         `gorm:"size:20;not null" json:"meeting_day"`
	MeetingTime    string         `gorm:"type:time;not null" json:"meeting_time"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	MaxMembers     *int           `json:"max_members,omitempty"`
	CurrentMembers int            `gorm:"not null;default:0" json:"current_members"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CellGroupModel) TableName() string {
	return "cell_groups"
}
