package model

import (
	"time"

	"github.com/google/uuid"
)

// Status de solicitação do titular
const (
	DataRequestPending    = "pending"
	DataRequestProcessing = "processing"
	DataRequestCompleted  = "completed"
	DataRequestDenied     = "denied"
)

// DataRequestModel — solicitação de direitos do titular (LGPD art. 18):
// acesso, exclusão, portabilidade ou retificação.
type DataRequestModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	ChurchID      uuid.UUID  `gorm:"type:uuid;not null" json:"church_id"`
	Type          string     `gorm:"type:varchar(20);not null" json:"type"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestDate   time.Time  `gorm:"autoCreateTime;column:request_date" json:"request_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
}

func (DataRequestModel) TableName() string {
	return "data_requests"
}
