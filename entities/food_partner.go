package entities

import (
	"github.com/google/uuid"
)

type FoodPartner struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`

	// Display-only counters maintained through profile updates, not derived
	// from food item records.
	TotalMeals      int `gorm:"default:0" json:"total_meals"`
	CustomersServed int `gorm:"default:0" json:"customers_served"`

	FoodItems []*FoodItem `gorm:"foreignKey:FoodPartnerID"`
	Timestamp
}
