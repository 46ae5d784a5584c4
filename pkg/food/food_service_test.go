package food

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/google/uuid"
)

type fakeFoodRepository struct {
	created *entities.FoodItem
	feed    []*entities.FoodItem
	feedErr error
}

func (f *fakeFoodRepository) CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	f.created = foodItem
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetFeed(ctx context.Context, mode string) ([]*entities.FoodItem, error) {
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.feed, nil
}

func (f *fakeFoodRepository) GetFoodItemsByPartner(ctx context.Context, partnerID string) ([]*entities.FoodItem, error) {
	return nil, nil
}

type fakeS3 struct {
	uploadedFolder string
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	f.uploadedFolder = folder
	return folder + "/" + fileName + ".mp4", nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error { return nil }

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string { return link }

func videoFile() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "clip.mp4"}
}

func TestCreateFoodValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CreateFoodRequest
		role    string
		wantErr error
	}{
		{
			name: "donation without quantity",
			req: domain.CreateFoodRequest{
				Name:       "Soup",
				IsDonation: true,
				PickupTime: "18:00-20:00",
				ExpiryDate: "2026-09-01",
				Video:      videoFile(),
			},
			role:    domain.RolePartner,
			wantErr: domain.ErrMissingDonationFields,
		},
		{
			name: "user post is forced into a donation",
			req: domain.CreateFoodRequest{
				Name:  "Home cooked pasta",
				Video: videoFile(),
			},
			role:    domain.RoleUser,
			wantErr: domain.ErrMissingDonationFields,
		},
		{
			name: "unparseable expiry date",
			req: domain.CreateFoodRequest{
				Name:       "Soup",
				IsDonation: true,
				Quantity:   "5 portions",
				PickupTime: "18:00-20:00",
				ExpiryDate: "next tuesday",
				Video:      videoFile(),
			},
			role:    domain.RolePartner,
			wantErr: domain.ErrInvalidExpiryDate,
		},
		{
			name: "malformed location payload",
			req: domain.CreateFoodRequest{
				Name:     "Bread",
				Location: "{not json",
				Video:    videoFile(),
			},
			role:    domain.RolePartner,
			wantErr: domain.ErrInvalidLocation,
		},
		{
			name: "missing video",
			req: domain.CreateFoodRequest{
				Name: "Bread",
			},
			role:    domain.RolePartner,
			wantErr: domain.ErrVideoRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewFoodService(&fakeFoodRepository{}, &fakeS3{})

			_, err := service.CreateFood(context.Background(), tt.req, uuid.NewString(), tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateFood() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateFoodAsPartner(t *testing.T) {
	repo := &fakeFoodRepository{}
	s3 := &fakeS3{}
	service := NewFoodService(repo, s3)

	partnerID := uuid.NewString()
	req := domain.CreateFoodRequest{
		Name:        "Surplus Pastries",
		Description: "End of day bakery surplus",
		Location:    `{"lat": 52.37, "lng": 4.89, "address": "5 Baker Lane"}`,
		Video:       videoFile(),
	}

	res, err := service.CreateFood(context.Background(), req, partnerID, domain.RolePartner)
	if err != nil {
		t.Fatalf("CreateFood() error = %v", err)
	}

	if res.Status != domain.FoodStatusAvailable {
		t.Errorf("status = %q, want %q", res.Status, domain.FoodStatusAvailable)
	}
	if res.IsDonation {
		t.Error("partner post without the donation flag should stay a regular post")
	}
	if repo.created == nil {
		t.Fatal("food item was not persisted")
	}
	if repo.created.FoodPartnerID == nil || repo.created.FoodPartnerID.String() != partnerID {
		t.Error("food item should be attributed to the partner")
	}
	if repo.created.UserID != nil {
		t.Error("partner post should not carry a user id")
	}
	if repo.created.Address != "5 Baker Lane" {
		t.Errorf("address = %q, want %q", repo.created.Address, "5 Baker Lane")
	}
	if s3.uploadedFolder != "food-videos" {
		t.Errorf("video uploaded to %q, want %q", s3.uploadedFolder, "food-videos")
	}
}

func TestCreateFoodAsUserForcesDonation(t *testing.T) {
	repo := &fakeFoodRepository{}
	service := NewFoodService(repo, &fakeS3{})

	userID := uuid.NewString()
	req := domain.CreateFoodRequest{
		Name:       "Extra curry",
		Quantity:   "3 portions",
		PickupTime: "19:00-21:00",
		ExpiryDate: "2026-09-01",
		Video:      videoFile(),
	}

	res, err := service.CreateFood(context.Background(), req, userID, domain.RoleUser)
	if err != nil {
		t.Fatalf("CreateFood() error = %v", err)
	}

	if !res.IsDonation {
		t.Error("user post must be a donation")
	}
	if repo.created.UserID == nil || repo.created.UserID.String() != userID {
		t.Error("food item should be attributed to the user")
	}
	if repo.created.FoodPartnerID != nil {
		t.Error("user post should not carry a partner id")
	}
}

func TestGetFeedModes(t *testing.T) {
	feed := []*entities.FoodItem{
		{ID: uuid.New(), Name: "Soup", Status: domain.FoodStatusAvailable},
	}

	tests := []struct {
		name    string
		mode    string
		wantErr error
	}{
		{"all mode", domain.FeedModeAll, nil},
		{"available mode", domain.FeedModeAvailable, nil},
		{"empty mode defaults to all", "", nil},
		{"unknown mode", "expired", domain.ErrInvalidFeedMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewFoodService(&fakeFoodRepository{feed: feed}, &fakeS3{})

			res, err := service.GetFeed(context.Background(), tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetFeed() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && len(res) != len(feed) {
				t.Errorf("feed length = %d, want %d", len(res), len(feed))
			}
		})
	}
}

func TestToFoodItemResponse(t *testing.T) {
	lat, lng := 52.37, 4.89
	expiry := time.Now().Add(24 * time.Hour)
	partner := &entities.FoodPartner{ID: uuid.New(), Name: "Corner Bakery", Address: "5 Baker Lane"}

	item := &entities.FoodItem{
		ID:          uuid.New(),
		Name:        "Surplus Pastries",
		IsDonation:  true,
		ExpiryDate:  &expiry,
		Latitude:    &lat,
		Longitude:   &lng,
		Address:     "5 Baker Lane",
		Status:      domain.FoodStatusAvailable,
		FoodPartner: partner,
	}

	res := ToFoodItemResponse(item)

	if res.Location == nil {
		t.Fatal("expected a location payload")
	}
	if res.Location.Lat == nil || *res.Location.Lat != lat {
		t.Error("latitude not carried over")
	}
	if res.FoodPartner == nil || res.FoodPartner.Name != "Corner Bakery" {
		t.Error("partner summary not carried over")
	}

	bare := &entities.FoodItem{ID: uuid.New(), Name: "Plain"}
	if got := ToFoodItemResponse(bare); got.Location != nil || got.FoodPartner != nil {
		t.Error("bare item should have no location or partner")
	}
}
