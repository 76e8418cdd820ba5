package dto

import "encoding/json"

type RoomRequest struct {
	Name        string      `json:"name" example:"101"`
	Address     string      `json:"address" example:"12 Le Loi, District 1"`
	Description string      `json:"description" example:"Corner room with balcony"`
	ImageURL    string      `json:"image_url" example:"https://res.cloudinary.com/demo/image/upload/rooms/101.jpg"`
	Price       json.Number `json:"price" swaggertype:"number" example:"2000000"`
}

type TenantRequest struct {
	Name       string `json:"name" example:"Alice Nguyen"`
	Phone      string `json:"phone" example:"0901234567"`
	RoomNumber string `json:"room_number" example:"101"`
	StartDate  string `json:"start_date" example:"2024-01-05"`
	Notes      string `json:"notes" example:"Deposit paid in cash"`
}

type PaymentRequest struct {
	TenantID string  `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount   float64 `json:"amount" example:"2000000"`
	// Date accepts RFC3339 or YYYY-MM-DD and defaults to now
	Date string `json:"date" copier:"-" example:"2024-01-03"`
	Note string `json:"note" example:"January rent"`
}

type ProfileRequest struct {
	DisplayName string `json:"display_name" example:"Linh Tran"`
	PhoneNumber string `json:"phone_number" example:"0907654321"`
	PhotoURL    string `json:"photo_url" example:"https://res.cloudinary.com/demo/image/upload/avatar.jpg"`
	Role        string `json:"role" example:"manager"`
	Status      string `json:"status" example:"online"`
}
