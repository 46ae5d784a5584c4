package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodItem is created by a food partner or, for donations only, by a user.
// Exactly one of FoodPartnerID/UserID is set.
type FoodItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	VideoURL      string     `json:"video_url"`
	FoodPartnerID *uuid.UUID `json:"food_partner_id,omitempty"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	LikeCount     int        `gorm:"default:0" json:"like_count"`
	SavesCount    int        `gorm:"default:0" json:"saves_count"`

	// Donation fields, required when IsDonation is set.
	IsDonation bool       `gorm:"default:false" json:"is_donation"`
	Quantity   string     `json:"quantity,omitempty"` // e.g. "5kg" or "10 servings"
	PickupTime string     `json:"pickup_time,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`

	Status string `gorm:"default:available" json:"status"` // "available", "claimed", "picked_up"

	FoodPartner *FoodPartner `gorm:"foreignKey:FoodPartnerID"`
	User        *User        `gorm:"foreignKey:UserID"`
	Timestamp
}
