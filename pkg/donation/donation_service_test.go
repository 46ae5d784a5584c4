package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeDonationRepository struct {
	food    *entities.FoodItem
	foodErr error
	user    *entities.User
	userErr error

	claimOK  bool
	claimErr error

	score        int
	scoreCalls   int
	updatedLevel string
}

func (f *fakeDonationRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	if f.foodErr != nil {
		return nil, f.foodErr
	}
	return f.food, nil
}

func (f *fakeDonationRepository) ClaimFoodItem(ctx context.Context, id string) (bool, error) {
	if f.claimErr != nil {
		return false, f.claimErr
	}
	return f.claimOK, nil
}

func (f *fakeDonationRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeDonationRepository) IncrementVolunteerScore(ctx context.Context, userID string) (int, error) {
	f.scoreCalls++
	f.score++
	return f.score, nil
}

func (f *fakeDonationRepository) UpdateVolunteerLevel(ctx context.Context, userID string, level string) error {
	f.updatedLevel = level
	return nil
}

func availableDonation() *entities.FoodItem {
	return &entities.FoodItem{
		ID:         uuid.New(),
		Name:       "Leftover Rice Boxes",
		IsDonation: true,
		Status:     domain.FoodStatusAvailable,
		Address:    "12 Market Street",
	}
}

func testUser() *entities.User {
	return &entities.User{
		ID:    uuid.New(),
		Email: "claimant@example.com",
	}
}

func TestClaimDonationAsConsumer(t *testing.T) {
	repo := &fakeDonationRepository{
		food:    availableDonation(),
		user:    testUser(),
		claimOK: true,
	}
	service := NewDonationService(repo)

	res, err := service.ClaimDonation(context.Background(), uuid.NewString(), uuid.NewString(), domain.ClaimRoleConsumer)
	if err != nil {
		t.Fatalf("ClaimDonation() error = %v", err)
	}

	if res.Ticket.ID == "" {
		t.Error("expected a ticket id")
	}
	if res.Ticket.Address != "12 Market Street" {
		t.Errorf("ticket address = %q, want %q", res.Ticket.Address, "12 Market Street")
	}
	if res.UserStats != nil {
		t.Error("consumer claim should not return volunteer stats")
	}
	if repo.scoreCalls != 0 {
		t.Errorf("consumer claim incremented volunteer score %d times", repo.scoreCalls)
	}
}

func TestClaimDonationAsVolunteer(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wantLevel string
	}{
		{"first claim stays bronze", 0, domain.LevelBronze},
		{"tenth claim reaches silver", 9, domain.LevelSilver},
		{"fiftieth claim reaches gold", 49, domain.LevelGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeDonationRepository{
				food:    availableDonation(),
				user:    testUser(),
				claimOK: true,
				score:   tt.score,
			}
			service := NewDonationService(repo)

			res, err := service.ClaimDonation(context.Background(), uuid.NewString(), uuid.NewString(), domain.ClaimRoleVolunteer)
			if err != nil {
				t.Fatalf("ClaimDonation() error = %v", err)
			}

			if res.UserStats == nil {
				t.Fatal("volunteer claim should return stats")
			}
			if res.UserStats.Score != tt.score+1 {
				t.Errorf("score = %d, want %d", res.UserStats.Score, tt.score+1)
			}
			if res.UserStats.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", res.UserStats.Level, tt.wantLevel)
			}
			if repo.updatedLevel != tt.wantLevel {
				t.Errorf("persisted level = %q, want %q", repo.updatedLevel, tt.wantLevel)
			}
		})
	}
}

func TestClaimDonationRejections(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	claimedItem := availableDonation()
	claimedItem.Status = domain.FoodStatusClaimed

	regularPost := availableDonation()
	regularPost.IsDonation = false

	expiredItem := availableDonation()
	expiredItem.ExpiryDate = &past

	tests := []struct {
		name    string
		repo    *fakeDonationRepository
		role    string
		wantErr error
	}{
		{
			name:    "unknown role",
			repo:    &fakeDonationRepository{food: availableDonation(), user: testUser(), claimOK: true},
			role:    "admin",
			wantErr: domain.ErrInvalidClaimRole,
		},
		{
			name:    "food not found",
			repo:    &fakeDonationRepository{foodErr: gorm.ErrRecordNotFound},
			role:    domain.ClaimRoleConsumer,
			wantErr: domain.ErrFoodNotFound,
		},
		{
			name:    "regular post is not claimable",
			repo:    &fakeDonationRepository{food: regularPost},
			role:    domain.ClaimRoleConsumer,
			wantErr: domain.ErrDonationUnavailable,
		},
		{
			name:    "already claimed",
			repo:    &fakeDonationRepository{food: claimedItem},
			role:    domain.ClaimRoleConsumer,
			wantErr: domain.ErrDonationUnavailable,
		},
		{
			name:    "expired donation",
			repo:    &fakeDonationRepository{food: expiredItem},
			role:    domain.ClaimRoleConsumer,
			wantErr: domain.ErrDonationUnavailable,
		},
		{
			name:    "claimant account missing",
			repo:    &fakeDonationRepository{food: availableDonation(), userErr: gorm.ErrRecordNotFound},
			role:    domain.ClaimRoleConsumer,
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name:    "lost the claim race",
			repo:    &fakeDonationRepository{food: availableDonation(), user: testUser(), claimOK: false},
			role:    domain.ClaimRoleVolunteer,
			wantErr: domain.ErrDonationUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDonationService(tt.repo)

			_, err := service.ClaimDonation(context.Background(), uuid.NewString(), uuid.NewString(), tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ClaimDonation() error = %v, want %v", err, tt.wantErr)
			}
			if tt.repo.scoreCalls != 0 {
				t.Errorf("rejected claim incremented volunteer score %d times", tt.repo.scoreCalls)
			}
		})
	}
}

func TestPickupAddressFallback(t *testing.T) {
	partner := &entities.FoodPartner{Address: "44 Partner Road"}

	tests := []struct {
		name string
		food *entities.FoodItem
		want string
	}{
		{
			name: "item address wins",
			food: &entities.FoodItem{Address: "12 Market Street", FoodPartner: partner},
			want: "12 Market Street",
		},
		{
			name: "partner address fallback",
			food: &entities.FoodItem{FoodPartner: partner},
			want: "44 Partner Road",
		},
		{
			name: "default when nothing set",
			food: &entities.FoodItem{},
			want: domain.DefaultPickupAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickupAddress(tt.food); got != tt.want {
				t.Errorf("pickupAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
