package model

import (
	"time"

	"github.com/google/uuid"
)

// Métodos aceitos no Brasil (CHECK no banco)
const (
	MethodPix        = "pix"
	MethodCreditCard = "credit_card"
	MethodBoleto     = "boleto"
)

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// PaymentModel — mensalidade da igreja no banco compartilhado.
// A integração com gateway fica fora deste serviço; aqui só o registro.
type PaymentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID      uuid.UUID  `gorm:"type:uuid;not null" json:"church_id"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	MemberCount   int        `gorm:"not null" json:"member_count"`
	Method        string     `gorm:"type:varchar(20);not null" json:"method"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate       time.Time  `gorm:"type:date;not null" json:"due_date"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	TransactionID string     `gorm:"type:text" json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
