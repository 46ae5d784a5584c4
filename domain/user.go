package domain

import "time"

var (
	MessageSuccessGetProfile = "user profile fetched successfully"
	MessageSuccessGetLiked   = "liked foods fetched successfully"

	MessageFailedGetProfile = "failed to fetch user profile"
	MessageFailedGetLiked   = "failed to fetch liked foods"
)

type (
	UserProfileResponse struct {
		ID             string    `json:"id"`
		FullName       string    `json:"fullName"`
		Email          string    `json:"email"`
		ProfilePhoto   string    `json:"profilePhoto,omitempty"`
		VolunteerScore int       `json:"volunteerScore"`
		VolunteerLevel string    `json:"volunteerLevel"`
		LikedCount     int64     `json:"likedCount"`
		SavedCount     int64     `json:"savedCount"`
		CreatedAt      time.Time `json:"createdAt"`
	}
)
