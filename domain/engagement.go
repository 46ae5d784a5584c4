package domain

var (
	MessageSuccessLikeFood   = "food liked successfully"
	MessageSuccessUnlikeFood = "food unliked successfully"
	MessageSuccessSaveFood   = "food saved successfully"
	MessageSuccessUnsaveFood = "food unsaved successfully"
	MessageSuccessGetSaved   = "saved foods retrieved successfully"
	MessageFailedToggleLike  = "failed to process like"
	MessageFailedToggleSave  = "failed to process save"
	MessageFailedGetSaved    = "failed to retrieve saved foods"
)

type (
	ToggleEngagementRequest struct {
		FoodID string `json:"foodId" validate:"required,uuid"`
	}

	ToggleLikeResponse struct {
		IsLiked   bool `json:"isLiked"`
		LikeCount int  `json:"likeCount"`
	}

	ToggleSaveResponse struct {
		IsSaved    bool `json:"isSaved"`
		SavesCount int  `json:"savesCount"`
	}
)
