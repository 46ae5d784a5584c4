package user

import (
	"context"
	"errors"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/SiddharthChaturvedii/FoodView/pkg/engagement"
	"github.com/SiddharthChaturvedii/FoodView/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository       UserRepository
		engagementRepository engagement.EngagementRepository
		jwtService           jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, engagementRepository engagement.EngagementRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:       userRepository,
		engagementRepository: engagementRepository,
		jwtService:           jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.AuthResponse, error) {
	_, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return domain.AuthResponse{}, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:             uuid.New(),
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       string(hashed),
		VolunteerLevel: domain.LevelBronze,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	token := s.jwtService.GenerateToken(user.ID.String(), domain.RoleUser)

	return domain.AuthResponse{
		ID:       user.ID.String(),
		FullName: user.FullName,
		Email:    user.Email,
		Role:     domain.RoleUser,
		Token:    token,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(user.ID.String(), domain.RoleUser)

	return domain.AuthResponse{
		ID:       user.ID.String(),
		FullName: user.FullName,
		Email:    user.Email,
		Role:     domain.RoleUser,
		Token:    token,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrAccountNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	likedCount, err := s.engagementRepository.CountLikesByUser(ctx, userID)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	savedCount, err := s.engagementRepository.CountSavesByUser(ctx, userID)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	return domain.UserProfileResponse{
		ID:             user.ID.String(),
		FullName:       user.FullName,
		Email:          user.Email,
		ProfilePhoto:   user.ProfilePhoto,
		VolunteerScore: user.VolunteerScore,
		VolunteerLevel: user.VolunteerLevel,
		LikedCount:     likedCount,
		SavedCount:     savedCount,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrAccountNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:             user.ID.String(),
		Role:           domain.RoleUser,
		FullName:       user.FullName,
		Email:          user.Email,
		ProfilePhoto:   user.ProfilePhoto,
		VolunteerScore: user.VolunteerScore,
		VolunteerLevel: user.VolunteerLevel,
		CreatedAt:      user.CreatedAt,
	}, nil
}
