package domain

import (
	"strings"
	"time"
)

// Tenant is a person renting a room. RoomNumber matches Room.Name, not Room.ID.
type Tenant struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Phone      string    `gorm:"type:text;not null" json:"phone"`
	RoomNumber string    `gorm:"type:text;not null;index" json:"room_number"`
	StartDate  string    `gorm:"type:text;not null" json:"start_date"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type TenantFields struct {
	Name       string `validate:"required"`
	Phone      string `validate:"required"`
	RoomNumber string `validate:"required"`
	StartDate  string `validate:"required"`
	Notes      string
}

func (f *TenantFields) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.RoomNumber = strings.TrimSpace(f.RoomNumber)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.Notes = strings.TrimSpace(f.Notes)
	return validateStruct(f)
}

func (f TenantFields) Apply(tenant *Tenant) {
	tenant.Name = f.Name
	tenant.Phone = f.Phone
	tenant.RoomNumber = f.RoomNumber
	tenant.StartDate = f.StartDate
	tenant.Notes = f.Notes
}
