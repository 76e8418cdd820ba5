package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomRented    RoomStatus = "rented"
)

func (s RoomStatus) IsValid() bool {
	return s == RoomAvailable || s == RoomRented
}

// ParseRoomStatus accepts "", "available" or "rented". The empty status means "no filter".
func ParseRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(strings.ToLower(strings.TrimSpace(s)))
	if status == "" || status.IsValid() {
		return status, nil
	}
	return "", NewValidationError("status", "must be one of available rented")
}

type Room struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string     `gorm:"type:text;not null;index" json:"name"`
	Address     string     `gorm:"type:text;not null" json:"address"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Price       float64    `gorm:"type:double precision;not null" json:"price"`
	ImageURL    string     `gorm:"type:text;not null" json:"image_url"`
	Status      RoomStatus `gorm:"type:text;not null;default:'available'" json:"status"`
	TenantID    *string    `gorm:"type:uuid" json:"tenant_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomFields is the operator-editable part of a Room.
// Price stays textual until Validate so that "abc" and "" are reported as validation errors.
type RoomFields struct {
	Name        string `validate:"required"`
	Address     string `validate:"required"`
	Description string `validate:"required"`
	ImageURL    string `validate:"required"`
	Price       string `validate:"required"`
}

// Validate trims the fields and returns the parsed price.
func (f *RoomFields) Validate() (float64, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Address = strings.TrimSpace(f.Address)
	f.Description = strings.TrimSpace(f.Description)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	f.Price = strings.TrimSpace(f.Price)

	if err := validateStruct(f); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, NewValidationError("price", "must be a number")
	}
	if price <= 0 {
		return 0, NewValidationError("price", "must be greater than 0")
	}
	return price, nil
}

// Apply copies validated fields onto the room, leaving status and tenant back-reference alone.
func (f RoomFields) Apply(room *Room, price float64) {
	room.Name = f.Name
	room.Address = f.Address
	room.Description = f.Description
	room.ImageURL = f.ImageURL
	room.Price = price
}
