package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetPartner    = "food partner retrieved successfully"
	MessageSuccessUpdatePartner = "profile updated successfully"

	MessageFailedGetPartner    = "failed to retrieve food partner"
	MessageFailedUpdatePartner = "failed to update profile"

	ErrPartnerNotFound  = errors.New("food partner not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

type (
	UpdatePartnerRequest struct {
		Name            string `json:"name" form:"name" validate:"omitempty"`
		Phone           string `json:"phone" form:"phone" validate:"omitempty"`
		Address         string `json:"address" form:"address" validate:"omitempty"`
		TotalMeals      *int   `json:"totalMeals" form:"totalMeals" validate:"omitempty,min=0"`
		CustomersServed *int   `json:"customersServed" form:"customersServed" validate:"omitempty,min=0"`

		ProfilePhoto *multipart.FileHeader `json:"-" form:"-"`
	}

	PartnerProfileResponse struct {
		ID              string             `json:"id"`
		Name            string             `json:"name"`
		ContactName     string             `json:"contactName"`
		Phone           string             `json:"phone"`
		Address         string             `json:"address"`
		Email           string             `json:"email"`
		ProfilePhoto    string             `json:"profilePhoto,omitempty"`
		TotalMeals      int                `json:"totalMeals"`
		CustomersServed int                `json:"customersServed"`
		FoodItems       []FoodItemResponse `json:"foodItems,omitempty"`
	}
)
