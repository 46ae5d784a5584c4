package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegisterUser    = "user registered successfully"
	MessageSuccessLoginUser       = "user logged in successfully"
	MessageSuccessLogoutUser      = "user logged out successfully"
	MessageSuccessRegisterPartner = "food partner registered successfully"
	MessageSuccessLoginPartner    = "food partner logged in successfully"
	MessageSuccessLogoutPartner   = "food partner logged out successfully"
	MessageSuccessGetMe           = "current account retrieved successfully"

	MessageFailedRegisterUser    = "failed to register user"
	MessageFailedLoginUser       = "failed to log in user"
	MessageFailedRegisterPartner = "failed to register food partner"
	MessageFailedLoginPartner    = "failed to log in food partner"
	MessageFailedGetMe           = "failed to retrieve current account"

	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrPartnerAlreadyExists = errors.New("food partner account already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountNotFound      = errors.New("account not found")
)

type (
	RegisterUserRequest struct {
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterPartnerRequest struct {
		Name        string `json:"name" validate:"required"`
		ContactName string `json:"contactName" validate:"required"`
		Phone       string `json:"phone" validate:"required"`
		Address     string `json:"address" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=6"`
	}

	AuthResponse struct {
		ID       string `json:"id"`
		FullName string `json:"fullName,omitempty"`
		Name     string `json:"name,omitempty"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Token    string `json:"token"`
	}

	MeResponse struct {
		ID             string    `json:"id"`
		Role           string    `json:"role"`
		FullName       string    `json:"fullName"`
		Email          string    `json:"email"`
		ProfilePhoto   string    `json:"profilePhoto,omitempty"`
		VolunteerScore int       `json:"volunteerScore,omitempty"`
		VolunteerLevel string    `json:"volunteerLevel,omitempty"`
		Address        string    `json:"address,omitempty"`
		Phone          string    `json:"phone,omitempty"`
		CreatedAt      time.Time `json:"createdAt"`
	}
)
