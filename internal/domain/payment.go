package domain

import (
	"math"
	"strings"
	"time"
)

// Payment is an append-only ledger entry. TenantName and RoomNumber are copied from the
// tenant when the payment is recorded and keep that historical value afterwards.
type Payment struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID   string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	TenantName string    `gorm:"type:text;not null" json:"tenant_name"`
	RoomNumber string    `gorm:"type:text;not null" json:"room_number"`
	Amount     float64   `gorm:"type:double precision;not null" json:"amount"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Note       string    `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentFields struct {
	TenantID string  `validate:"required"`
	Amount   float64 `validate:"gt=0"`
	Date     time.Time
	Note     string
}

func (f *PaymentFields) Validate() error {
	f.TenantID = strings.TrimSpace(f.TenantID)
	f.Note = strings.TrimSpace(f.Note)
	if math.IsNaN(f.Amount) || math.IsInf(f.Amount, 0) {
		return NewValidationError("amount", "must be a number")
	}
	return validateStruct(f)
}
