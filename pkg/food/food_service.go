package food

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils/storage"
	"github.com/google/uuid"
)

type (
	FoodService interface {
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, subjectID string, role string) (domain.FoodItemResponse, error)
		GetFeed(ctx context.Context, mode string) ([]domain.FoodItemResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func parseExpiryDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, subjectID string, role string) (domain.FoodItemResponse, error) {
	// Users cannot create regular posts, only donations.
	if role == domain.RoleUser {
		req.IsDonation = true
	}

	if req.IsDonation {
		if req.Quantity == "" || req.PickupTime == "" || req.ExpiryDate == "" {
			return domain.FoodItemResponse{}, domain.ErrMissingDonationFields
		}
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := parseExpiryDate(req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	var location domain.LocationPayload
	if req.Location != "" {
		if err := json.Unmarshal([]byte(req.Location), &location); err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidLocation
		}
	}

	if req.Video == nil {
		return domain.FoodItemResponse{}, domain.ErrVideoRequired
	}

	subjectUUID, err := uuid.Parse(subjectID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	foodID := uuid.New()

	objectKey, err := s.s3.UploadFile(foodID.String(), req.Video, "food-videos", storage.AllowVideo...)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem := &entities.FoodItem{
		ID:          foodID,
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    s.s3.GetPublicLinkKey(objectKey),
		IsDonation:  req.IsDonation,
		Quantity:    req.Quantity,
		PickupTime:  req.PickupTime,
		ExpiryDate:  expiryDate,
		Latitude:    location.Lat,
		Longitude:   location.Lng,
		Address:     location.Address,
		Status:      domain.FoodStatusAvailable,
	}

	if role == domain.RoleUser {
		foodItem.UserID = &subjectUUID
	} else {
		foodItem.FoodPartnerID = &subjectUUID
	}

	if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToFoodItemResponse(foodItem), nil
}

func (s *foodService) GetFeed(ctx context.Context, mode string) ([]domain.FoodItemResponse, error) {
	if mode == "" {
		mode = domain.FeedModeAll
	}
	if mode != domain.FeedModeAll && mode != domain.FeedModeAvailable {
		return nil, domain.ErrInvalidFeedMode
	}

	foodItems, err := s.foodRepository.GetFeed(ctx, mode)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		result = append(result, ToFoodItemResponse(item))
	}

	return result, nil
}

// ToFoodItemResponse converts a food item entity into its API shape.
func ToFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	res := domain.FoodItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		VideoURL:    item.VideoURL,
		LikeCount:   item.LikeCount,
		SavesCount:  item.SavesCount,
		IsDonation:  item.IsDonation,
		Quantity:    item.Quantity,
		PickupTime:  item.PickupTime,
		ExpiryDate:  item.ExpiryDate,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
	}

	if item.Latitude != nil || item.Longitude != nil || item.Address != "" {
		res.Location = &domain.LocationPayload{
			Lat:     item.Latitude,
			Lng:     item.Longitude,
			Address: item.Address,
		}
	}

	if item.FoodPartner != nil {
		res.FoodPartner = &domain.FoodPartnerSummary{
			ID:      item.FoodPartner.ID.String(),
			Name:    item.FoodPartner.Name,
			Address: item.FoodPartner.Address,
		}
	}

	return res
}
