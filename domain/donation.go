package domain

import (
	"errors"
	"time"
)

const (
	ClaimRoleVolunteer = "volunteer"
	ClaimRoleConsumer  = "consumer"

	LevelBronze   = "Bronze"
	LevelSilver   = "Silver"
	LevelGold     = "Gold"
	LevelPlatinum = "Platinum"

	// Fallback pickup address when neither the donation nor its partner
	// carries one.
	DefaultPickupAddress = "Food Partner Location"
)

var (
	MessageSuccessClaimDonation = "donation claimed successfully"

	MessageFailedClaimDonation = "failed to claim donation"

	ErrDonationUnavailable = errors.New("this donation is no longer available")
	ErrInvalidClaimRole    = errors.New("claim role must be volunteer or consumer")
)

type (
	ClaimDonationRequest struct {
		Role string `json:"role" validate:"required,oneof=volunteer consumer"`
	}

	ClaimTicket struct {
		ID       string     `json:"id"`
		FoodName string     `json:"foodName"`
		Address  string     `json:"address"`
		Expiry   *time.Time `json:"expiry,omitempty"`
	}

	VolunteerStats struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	}

	ClaimDonationResponse struct {
		Ticket    ClaimTicket     `json:"ticket"`
		UserStats *VolunteerStats `json:"userStats,omitempty"`
	}
)
