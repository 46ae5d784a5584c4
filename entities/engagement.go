package entities

import (
	"github.com/google/uuid"
)

// Like and Save are existence records keyed by (user, food). The composite
// unique indexes are what make the toggle operations race-safe; the
// denormalized counters on FoodItem are the display source of truth.
type Like struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_likes_user_food" json:"user_id"`
	FoodItemID uuid.UUID `gorm:"uniqueIndex:idx_likes_user_food" json:"food_item_id"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}

type Save struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_saves_user_food" json:"user_id"`
	FoodItemID uuid.UUID `gorm:"uniqueIndex:idx_saves_user_food" json:"food_item_id"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
