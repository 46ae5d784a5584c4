package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Password       string    `json:"-"`
	ProfilePhoto   string    `json:"profile_photo,omitempty"`
	VolunteerScore int       `gorm:"default:0" json:"volunteer_score"`
	VolunteerLevel string    `gorm:"default:Bronze" json:"volunteer_level"` // "Bronze", "Silver", "Gold", "Platinum"

	Timestamp
}
