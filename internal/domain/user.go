package domain

import (
	"strings"
	"time"
)

const DefaultProfileStatus = "online"

// UserProfile is keyed by the identity provider's user id.
type UserProfile struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Email       string    `gorm:"type:text" json:"email"`
	DisplayName string    `gorm:"type:text" json:"display_name"`
	PhoneNumber string    `gorm:"type:text" json:"phone_number"`
	PhotoURL    string    `gorm:"type:text" json:"photo_url"`
	Role        string    `gorm:"type:text" json:"role"`
	Status      string    `gorm:"type:text;not null;default:'online'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "users"
}

type ProfileFields struct {
	DisplayName string
	PhoneNumber string
	PhotoURL    string
	Role        string
	Status      string `validate:"omitempty,oneof=online offline busy"`
}

func (f *ProfileFields) Validate() error {
	f.DisplayName = strings.TrimSpace(f.DisplayName)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.PhotoURL = strings.TrimSpace(f.PhotoURL)
	f.Role = strings.TrimSpace(f.Role)
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	return validateStruct(f)
}

func (f ProfileFields) Apply(profile *UserProfile) {
	profile.DisplayName = f.DisplayName
	profile.PhoneNumber = f.PhoneNumber
	profile.PhotoURL = f.PhotoURL
	profile.Role = f.Role
	if f.Status != "" {
		profile.Status = f.Status
	}
}
