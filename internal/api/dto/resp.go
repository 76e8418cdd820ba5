package dto

import (
	"encoding/json"
	"time"
)

type OccupancyResponse struct {
	Status     string  `json:"status" example:"rented"`
	TenantName *string `json:"tenant_name" example:"Alice Nguyen"`
	StartDate  *string `json:"start_date" example:"2024-01-05"`
}

type RoomResponse struct {
	ID          string             `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string             `json:"name" example:"101"`
	Address     string             `json:"address" example:"12 Le Loi, District 1"`
	Description string             `json:"description" example:"Corner room with balcony"`
	Price       float64            `json:"price" example:"2000000"`
	ImageURL    string             `json:"image_url" example:"https://res.cloudinary.com/demo/image/upload/rooms/101.jpg"`
	Status      string             `json:"status" example:"available"`
	TenantID    *string            `json:"tenant_id,omitempty"`
	Occupancy   *OccupancyResponse `json:"occupancy,omitempty"`
	CreatedAt   time.Time          `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time          `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type TenantResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string    `json:"name" example:"Alice Nguyen"`
	Phone      string    `json:"phone" example:"0901234567"`
	RoomNumber string    `json:"room_number" example:"101"`
	StartDate  string    `json:"start_date" example:"2024-01-05"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type PaymentResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID   string    `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantName string    `json:"tenant_name" example:"Alice Nguyen"`
	RoomNumber string    `json:"room_number" example:"101"`
	Amount     float64   `json:"amount" example:"2000000"`
	Date       time.Time `json:"date" example:"2024-01-03T09:00:00+07:00"`
	Note       string    `json:"note" example:"January rent"`
	CreatedAt  time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// MonthlyReportResponse lists a month's payments newest first with their total
type MonthlyReportResponse struct {
	Month int               `json:"month" example:"1"`
	Year  int               `json:"year,omitempty" example:"2024"`
	Items []PaymentResponse `json:"items"`
	Total float64           `json:"total" example:"1200000"`
}

type ProfileResponse struct {
	ID          string    `json:"id" example:"auth0|64b7f1"`
	Email       string    `json:"email" example:"linh@example.com"`
	DisplayName string    `json:"display_name" example:"Linh Tran"`
	PhoneNumber string    `json:"phone_number" example:"0907654321"`
	PhotoURL    string    `json:"photo_url"`
	Role        string    `json:"role" example:"manager"`
	Status      string    `json:"status" example:"online"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type DriftResponse struct {
	RoomID    string  `json:"room_id"`
	RoomName  string  `json:"room_name" example:"101"`
	Persisted string  `json:"persisted" example:"available"`
	Derived   string  `json:"derived" example:"rented"`
	TenantID  *string `json:"tenant_id,omitempty"`
}

type ReconcileResponse struct {
	RoomsChecked int             `json:"rooms_checked" example:"12"`
	Repaired     []DriftResponse `json:"repaired"`
}

type ImageUploadResponse struct {
	URL string `json:"url" example:"https://res.cloudinary.com/demo/image/upload/rooms/101.jpg"`
}

// Snapshot is the full content of one collection. Subscribers replace their local copy with Items.
type Snapshot struct {
	Collection  string          `json:"collection" example:"rooms"`
	Items       json.RawMessage `json:"items" swaggertype:"array,object"`
	GeneratedAt time.Time       `json:"generated_at" example:"2025-07-17T21:20:48Z"`
}
