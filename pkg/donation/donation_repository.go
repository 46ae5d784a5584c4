package donation

import (
	"context"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		ClaimFoodItem(ctx context.Context, id string) (bool, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		IncrementVolunteerScore(ctx context.Context, userID string) (int, error)
		UpdateVolunteerLevel(ctx context.Context, userID string, level string) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("FoodPartner").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

// ClaimFoodItem moves an available donation to claimed with a single
// conditional update. A false return means another claimant got there
// first (or the item stopped being an available donation).
func (r *donationRepository) ClaimFoodItem(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("id = ? AND is_donation = ? AND status = ?", id, true, domain.FoodStatusAvailable).
		Update("status", domain.FoodStatusClaimed)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *donationRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *donationRepository) IncrementVolunteerScore(ctx context.Context, userID string) (int, error) {
	var score int
	if err := r.db.WithContext(ctx).
		Raw("UPDATE users SET volunteer_score = volunteer_score + 1 WHERE id = ? RETURNING volunteer_score", userID).
		Scan(&score).Error; err != nil {
		return 0, err
	}
	return score, nil
}

func (r *donationRepository) UpdateVolunteerLevel(ctx context.Context, userID string, level string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("volunteer_level", level).Error
}
