package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/SiddharthChaturvedii/FoodView/internal/utils/storage"
	"github.com/SiddharthChaturvedii/FoodView/pkg/food"
	"github.com/SiddharthChaturvedii/FoodView/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	PartnerService interface {
		Register(ctx context.Context, req domain.RegisterPartnerRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		GetPartnerByID(ctx context.Context, id string) (domain.PartnerProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdatePartnerRequest, partnerID string) (domain.PartnerProfileResponse, error)
		Me(ctx context.Context, partnerID string) (domain.MeResponse, error)
	}

	partnerService struct {
		partnerRepository PartnerRepository
		foodRepository    food.FoodRepository
		jwtService        jwt.JWTService
		s3                storage.AwsS3
	}
)

func NewPartnerService(partnerRepository PartnerRepository, foodRepository food.FoodRepository, jwtService jwt.JWTService, s3 storage.AwsS3) PartnerService {
	return &partnerService{
		partnerRepository: partnerRepository,
		foodRepository:    foodRepository,
		jwtService:        jwtService,
		s3:                s3,
	}
}

func (s *partnerService) Register(ctx context.Context, req domain.RegisterPartnerRequest) (domain.AuthResponse, error) {
	_, err := s.partnerRepository.GetPartnerByEmail(ctx, req.Email)
	if err == nil {
		return domain.AuthResponse{}, domain.ErrPartnerAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	partner := &entities.FoodPartner{
		ID:          uuid.New(),
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Address:     req.Address,
		Email:       req.Email,
		Password:    string(hashed),
	}

	if err := s.partnerRepository.CreatePartner(ctx, partner); err != nil {
		return domain.AuthResponse{}, err
	}

	token := s.jwtService.GenerateToken(partner.ID.String(), domain.RolePartner)

	return domain.AuthResponse{
		ID:    partner.ID.String(),
		Name:  partner.Name,
		Email: partner.Email,
		Role:  domain.RolePartner,
		Token: token,
	}, nil
}

func (s *partnerService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(partner.ID.String(), domain.RolePartner)

	return domain.AuthResponse{
		ID:    partner.ID.String(),
		Name:  partner.Name,
		Email: partner.Email,
		Role:  domain.RolePartner,
		Token: token,
	}, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, id string) (domain.PartnerProfileResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PartnerProfileResponse{}, domain.ErrPartnerNotFound
		}
		return domain.PartnerProfileResponse{}, err
	}

	foodItems, err := s.foodRepository.GetFoodItemsByPartner(ctx, id)
	if err != nil {
		return domain.PartnerProfileResponse{}, err
	}

	items := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		items = append(items, food.ToFoodItemResponse(item))
	}

	return toPartnerProfileResponse(partner, items), nil
}

func (s *partnerService) UpdateProfile(ctx context.Context, req domain.UpdatePartnerRequest, partnerID string) (domain.PartnerProfileResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PartnerProfileResponse{}, domain.ErrPartnerNotFound
		}
		return domain.PartnerProfileResponse{}, err
	}

	updated := false

	if req.Name != "" {
		partner.Name = req.Name
		updated = true
	}
	if req.Phone != "" {
		partner.Phone = req.Phone
		updated = true
	}
	if req.Address != "" {
		partner.Address = req.Address
		updated = true
	}
	if req.TotalMeals != nil {
		partner.TotalMeals = *req.TotalMeals
		updated = true
	}
	if req.CustomersServed != nil {
		partner.CustomersServed = *req.CustomersServed
		updated = true
	}

	if req.ProfilePhoto != nil {
		fileName := fmt.Sprintf("partner-%s", partner.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.ProfilePhoto, "profile-photos", storage.AllowImage...)
		if err != nil {
			return domain.PartnerProfileResponse{}, err
		}
		partner.ProfilePhoto = s.s3.GetPublicLinkKey(objectKey)
		updated = true
	}

	if !updated {
		return domain.PartnerProfileResponse{}, domain.ErrNoFieldsToUpdate
	}

	if err := s.partnerRepository.UpdatePartner(ctx, partner); err != nil {
		return domain.PartnerProfileResponse{}, err
	}

	return toPartnerProfileResponse(partner, nil), nil
}

func (s *partnerService) Me(ctx context.Context, partnerID string) (domain.MeResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrAccountNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:           partner.ID.String(),
		Role:         domain.RolePartner,
		FullName:     partner.Name,
		Email:        partner.Email,
		ProfilePhoto: partner.ProfilePhoto,
		Address:      partner.Address,
		Phone:        partner.Phone,
		CreatedAt:    partner.CreatedAt,
	}, nil
}

func toPartnerProfileResponse(partner *entities.FoodPartner, items []domain.FoodItemResponse) domain.PartnerProfileResponse {
	return domain.PartnerProfileResponse{
		ID:              partner.ID.String(),
		Name:            partner.Name,
		ContactName:     partner.ContactName,
		Phone:           partner.Phone,
		Address:         partner.Address,
		Email:           partner.Email,
		ProfilePhoto:    partner.ProfilePhoto,
		TotalMeals:      partner.TotalMeals,
		CustomersServed: partner.CustomersServed,
		FoodItems:       items,
	}
}
