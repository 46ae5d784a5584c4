package engagement

import (
	"context"

	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EngagementRepository interface {
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		ToggleLike(ctx context.Context, userID, foodID uuid.UUID) (bool, int, error)
		ToggleSave(ctx context.Context, userID, foodID uuid.UUID) (bool, int, error)
		GetLikedFoods(ctx context.Context, userID string) ([]*entities.Like, error)
		GetSavedFoods(ctx context.Context, userID string) ([]*entities.Save, error)
		CountLikesByUser(ctx context.Context, userID string) (int64, error)
		CountSavesByUser(ctx context.Context, userID string) (int64, error)
	}

	engagementRepository struct {
		db *gorm.DB
	}
)

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

// ToggleLike runs the delete-or-insert and the counter update in one
// transaction. The unique (user_id, food_item_id) index backstops
// concurrent toggles; the counter never drops below zero.
func (r *engagementRepository) ToggleLike(ctx context.Context, userID, foodID uuid.UUID) (bool, int, error) {
	var liked bool
	var count int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND food_item_id = ?", userID, foodID).Delete(&entities.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = false
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", foodID).
				UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error; err != nil {
				return err
			}
		} else {
			liked = true
			like := &entities.Like{
				ID:         uuid.New(),
				UserID:     userID,
				FoodItemID: foodID,
			}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", foodID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
		}

		var item entities.FoodItem
		if err := tx.Select("like_count").Where("id = ?", foodID).First(&item).Error; err != nil {
			return err
		}
		count = item.LikeCount
		return nil
	})

	return liked, count, err
}

func (r *engagementRepository) ToggleSave(ctx context.Context, userID, foodID uuid.UUID) (bool, int, error) {
	var saved bool
	var count int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND food_item_id = ?", userID, foodID).Delete(&entities.Save{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			saved = false
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", foodID).
				UpdateColumn("saves_count", gorm.Expr("GREATEST(saves_count - 1, 0)")).Error; err != nil {
				return err
			}
		} else {
			saved = true
			save := &entities.Save{
				ID:         uuid.New(),
				UserID:     userID,
				FoodItemID: foodID,
			}
			if err := tx.Create(save).Error; err != nil {
				return err
			}
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", foodID).
				UpdateColumn("saves_count", gorm.Expr("saves_count + 1")).Error; err != nil {
				return err
			}
		}

		var item entities.FoodItem
		if err := tx.Select("saves_count").Where("id = ?", foodID).First(&item).Error; err != nil {
			return err
		}
		count = item.SavesCount
		return nil
	})

	return saved, count, err
}

func (r *engagementRepository) GetLikedFoods(ctx context.Context, userID string) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("FoodItem.FoodPartner").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *engagementRepository) GetSavedFoods(ctx context.Context, userID string) ([]*entities.Save, error) {
	var saves []*entities.Save
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("FoodItem.FoodPartner").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saves).Error; err != nil {
		return nil, err
	}
	return saves, nil
}

func (r *engagementRepository) CountLikesByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) CountSavesByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Save{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
