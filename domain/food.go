package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusAvailable = "available"
	FoodStatusClaimed   = "claimed"
	FoodStatusPickedUp  = "picked_up"

	// Feed modes. FeedModeAll matches the historical "show everything"
	// behavior and is the default; FeedModeAvailable hides expired or
	// already-claimed donations.
	FeedModeAll       = "all"
	FeedModeAvailable = "available"
)

var (
	MessageSuccessCreateFood = "food created successfully"
	MessageSuccessGetFeed    = "food items fetched successfully"

	MessageFailedCreateFood = "failed to create food"
	MessageFailedGetFeed    = "failed to fetch food items"

	ErrFoodNotFound          = errors.New("food item not found")
	ErrVideoRequired         = errors.New("video file is required")
	ErrMissingDonationFields = errors.New("quantity, pickup time and expiry date are required for donations")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidLocation       = errors.New("invalid location payload")
	ErrInvalidFeedMode       = errors.New("invalid feed mode")
)

type (
	// LocationPayload is the structured location sent by the client as a
	// JSON string alongside the multipart fields.
	LocationPayload struct {
		Lat     *float64 `json:"lat"`
		Lng     *float64 `json:"lng"`
		Address string   `json:"address"`
	}

	CreateFoodRequest struct {
		Name        string `json:"name" form:"name" validate:"required"`
		Description string `json:"description" form:"description"`
		IsDonation  bool   `json:"isDonation" form:"isDonation"`
		Quantity    string `json:"quantity" form:"quantity"`
		PickupTime  string `json:"pickupTime" form:"pickupTime"`
		ExpiryDate  string `json:"expiryDate" form:"expiryDate"`
		Location    string `json:"location" form:"location"`

		Video *multipart.FileHeader `json:"-" form:"-"`
	}

	FoodPartnerSummary struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address,omitempty"`
	}

	FoodItemResponse struct {
		ID          string              `json:"id"`
		Name        string              `json:"name"`
		Description string              `json:"description,omitempty"`
		VideoURL    string              `json:"videoUrl"`
		LikeCount   int                 `json:"likeCount"`
		SavesCount  int                 `json:"savesCount"`
		IsDonation  bool                `json:"isDonation"`
		Quantity    string              `json:"quantity,omitempty"`
		PickupTime  string              `json:"pickupTime,omitempty"`
		ExpiryDate  *time.Time          `json:"expiryDate,omitempty"`
		Location    *LocationPayload    `json:"location,omitempty"`
		Status      string              `json:"status"`
		FoodPartner *FoodPartnerSummary `json:"foodPartner,omitempty"`
		CreatedAt   time.Time           `json:"createdAt"`
	}
)
