package donation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils/mailing"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		ClaimDonation(ctx context.Context, foodID string, userID string, role string) (*domain.ClaimDonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
	}
)

func NewDonationService(donationRepository DonationRepository) DonationService {
	return &donationService{
		donationRepository: donationRepository,
	}
}

func (s *donationService) ClaimDonation(ctx context.Context, foodID string, userID string, role string) (*domain.ClaimDonationResponse, error) {
	if role != domain.ClaimRoleVolunteer && role != domain.ClaimRoleConsumer {
		return nil, domain.ErrInvalidClaimRole
	}

	food, err := s.donationRepository.GetFoodItemByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}

	if !food.IsDonation || food.Status != domain.FoodStatusAvailable {
		return nil, domain.ErrDonationUnavailable
	}

	// Expiry is checked lazily here, not by a background sweep.
	if food.ExpiryDate != nil && food.ExpiryDate.Before(time.Now()) {
		return nil, domain.ErrDonationUnavailable
	}

	user, err := s.donationRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	// The status write is conditional on the item still being available.
	// Losing the race surfaces exactly like a stale read.
	claimed, err := s.donationRepository.ClaimFoodItem(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.ErrDonationUnavailable
	}

	var stats *domain.VolunteerStats
	if role == domain.ClaimRoleVolunteer {
		score, err := s.donationRepository.IncrementVolunteerScore(ctx, userID)
		if err != nil {
			return nil, err
		}

		level := VolunteerLevelFor(score)
		if err := s.donationRepository.UpdateVolunteerLevel(ctx, userID, level); err != nil {
			return nil, err
		}

		stats = &domain.VolunteerStats{
			Score: score,
			Level: level,
		}
	}

	ticket := domain.ClaimTicket{
		ID:       uuid.New().String(),
		FoodName: food.Name,
		Address:  pickupAddress(food),
		Expiry:   food.ExpiryDate,
	}

	if mailing.Enabled() {
		go sendClaimReceipt(user.Email, ticket)
	}

	return &domain.ClaimDonationResponse{
		Ticket:    ticket,
		UserStats: stats,
	}, nil
}

func pickupAddress(food *entities.FoodItem) string {
	if food.Address != "" {
		return food.Address
	}
	if food.FoodPartner != nil && food.FoodPartner.Address != "" {
		return food.FoodPartner.Address
	}
	return domain.DefaultPickupAddress
}

func sendClaimReceipt(toEmail string, ticket domain.ClaimTicket) {
	expiry := "not specified"
	if ticket.Expiry != nil {
		expiry = ticket.Expiry.Format("2 Jan 2006 15:04")
	}

	body := fmt.Sprintf(
		"<p>Your claim ticket <b>%s</b> for <b>%s</b> is confirmed.</p><p>Pickup: %s<br>Expires: %s</p>",
		ticket.ID, ticket.FoodName, ticket.Address, expiry,
	)

	if err := mailing.SendMail(toEmail, "Your donation claim ticket", body); err != nil {
		log.Printf("error sending claim receipt: %v", err)
	}
}
