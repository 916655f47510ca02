package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsentRecordModel — registro de consentimento LGPD. Append-only: criado
// na ação que o motivou, nunca atualizado, retido indefinidamente.
// Retirada de consentimento gera preenchimento de withdrawn_date via um
// NOVO update exclusivo dessa coluna — nenhum outro campo muda.
type ConsentRecordModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	ChurchID      uuid.UUID  `gorm:"type:uuid;not null" json:"church_id"`
	Purpose       string     `gorm:"size:255;not null" json:"purpose"`
	ConsentGiven  bool       `gorm:"not null" json:"consent_given"`
	ConsentDate   time.Time  `gorm:"not null" json:"consent_date"`
	WithdrawnDate *time.Time `json:"withdrawn_date,omitempty"`
	IPAddress     string     `gorm:"type:inet" json:"ip_address,omitempty"`
	UserAgent     string     `gorm:"type:text" json:"user_agent,omitempty"`
}

func (ConsentRecordModel) TableName() string {
	return "consent_records"
}
