package engagement

import (
	"context"
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/pkg/food"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EngagementService interface {
		ToggleLike(ctx context.Context, userID string, foodID string) (domain.ToggleLikeResponse, error)
		ToggleSave(ctx context.Context, userID string, foodID string) (domain.ToggleSaveResponse, error)
		GetSavedFoods(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetLikedFoods(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
	}

	engagementService struct {
		engagementRepository EngagementRepository
	}
)

func NewEngagementService(engagementRepository EngagementRepository) EngagementService {
	return &engagementService{
		engagementRepository: engagementRepository,
	}
}

func (s *engagementService) resolve(ctx context.Context, userID string, foodID string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}

	foodUUID, err := uuid.Parse(foodID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}

	// Both toggles resolve the food id strictly before mutating anything.
	if _, err := s.engagementRepository.GetFoodItemByID(ctx, foodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, uuid.Nil, domain.ErrFoodNotFound
		}
		return uuid.Nil, uuid.Nil, err
	}

	return userUUID, foodUUID, nil
}

func (s *engagementService) ToggleLike(ctx context.Context, userID string, foodID string) (domain.ToggleLikeResponse, error) {
	userUUID, foodUUID, err := s.resolve(ctx, userID, foodID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	liked, count, err := s.engagementRepository.ToggleLike(ctx, userUUID, foodUUID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{
		IsLiked:   liked,
		LikeCount: count,
	}, nil
}

func (s *engagementService) ToggleSave(ctx context.Context, userID string, foodID string) (domain.ToggleSaveResponse, error) {
	userUUID, foodUUID, err := s.resolve(ctx, userID, foodID)
	if err != nil {
		return domain.ToggleSaveResponse{}, err
	}

	saved, count, err := s.engagementRepository.ToggleSave(ctx, userUUID, foodUUID)
	if err != nil {
		return domain.ToggleSaveResponse{}, err
	}

	return domain.ToggleSaveResponse{
		IsSaved:    saved,
		SavesCount: count,
	}, nil
}

func (s *engagementService) GetSavedFoods(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	saves, err := s.engagementRepository.GetSavedFoods(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FoodItemResponse, 0, len(saves))
	for _, save := range saves {
		if save.FoodItem != nil {
			result = append(result, food.ToFoodItemResponse(save.FoodItem))
		}
	}

	return result, nil
}

func (s *engagementService) GetLikedFoods(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	likes, err := s.engagementRepository.GetLikedFoods(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FoodItemResponse, 0, len(likes))
	for _, like := range likes {
		if like.FoodItem != nil {
			result = append(result, food.ToFoodItemResponse(like.FoodItem))
		}
	}

	return result, nil
}
