package food

import (
	"context"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFeed(ctx context.Context, mode string) ([]*entities.FoodItem, error)
		GetFoodItemsByPartner(ctx context.Context, partnerID string) ([]*entities.FoodItem, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("FoodPartner").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

// GetFeed returns the feed with the partner reference resolved. Expiry is
// evaluated here at read time; nothing sweeps expired donations.
func (r *foodRepository) GetFeed(ctx context.Context, mode string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	query := r.db.WithContext(ctx).Preload("FoodPartner")

	if mode == domain.FeedModeAvailable {
		query = query.Where(
			"is_donation = ? OR (is_donation = ? AND expiry_date > ? AND status = ?)",
			false, true, time.Now(), domain.FoodStatusAvailable,
		)
	}

	if err := query.Order("created_at DESC").Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByPartner(ctx context.Context, partnerID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("food_partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}
