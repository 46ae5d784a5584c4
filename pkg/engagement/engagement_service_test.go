package engagement

import (
	"context"
	"errors"
	"testing"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/SiddharthChaturvedii/FoodView/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeEngagementRepository mirrors the toggle semantics of the real
// repository with in-memory state.
type fakeEngagementRepository struct {
	food *entities.FoodItem

	likes map[uuid.UUID]bool
	saves map[uuid.UUID]bool

	likeCount int
	saveCount int
}

func newFakeEngagementRepository(food *entities.FoodItem) *fakeEngagementRepository {
	return &fakeEngagementRepository{
		food:  food,
		likes: make(map[uuid.UUID]bool),
		saves: make(map[uuid.UUID]bool),
	}
}

func (f *fakeEngagementRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	if f.food == nil || f.food.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.food, nil
}

func (f *fakeEngagementRepository) ToggleLike(ctx context.Context, userID, foodID uuid.UUID) (bool, int, error) {
	if f.likes[userID] {
		delete(f.likes, userID)
		if f.likeCount > 0 {
			f.likeCount--
		}
		return false, f.likeCount, nil
	}
	f.likes[userID] = true
	f.likeCount++
	return true, f.likeCount, nil
}

func (f *fakeEngagementRepository) ToggleSave(ctx context.Context, userID, foodID uuid.UUID) (bool, int, error) {
	if f.saves[userID] {
		delete(f.saves, userID)
		if f.saveCount > 0 {
			f.saveCount--
		}
		return false, f.saveCount, nil
	}
	f.saves[userID] = true
	f.saveCount++
	return true, f.saveCount, nil
}

func (f *fakeEngagementRepository) GetLikedFoods(ctx context.Context, userID string) ([]*entities.Like, error) {
	var likes []*entities.Like
	for range f.likes {
		likes = append(likes, &entities.Like{FoodItem: f.food})
	}
	return likes, nil
}

func (f *fakeEngagementRepository) GetSavedFoods(ctx context.Context, userID string) ([]*entities.Save, error) {
	var saves []*entities.Save
	for range f.saves {
		saves = append(saves, &entities.Save{FoodItem: f.food})
	}
	return saves, nil
}

func (f *fakeEngagementRepository) CountLikesByUser(ctx context.Context, userID string) (int64, error) {
	return int64(len(f.likes)), nil
}

func (f *fakeEngagementRepository) CountSavesByUser(ctx context.Context, userID string) (int64, error) {
	return int64(len(f.saves)), nil
}

func TestToggleLikeRoundTrip(t *testing.T) {
	food := &entities.FoodItem{ID: uuid.New(), Name: "Soup"}
	repo := newFakeEngagementRepository(food)
	service := NewEngagementService(repo)

	userID := uuid.NewString()
	foodID := food.ID.String()

	first, err := service.ToggleLike(context.Background(), userID, foodID)
	if err != nil {
		t.Fatalf("first toggle error = %v", err)
	}
	if !first.IsLiked || first.LikeCount != 1 {
		t.Errorf("first toggle = (%v, %d), want (true, 1)", first.IsLiked, first.LikeCount)
	}

	second, err := service.ToggleLike(context.Background(), userID, foodID)
	if err != nil {
		t.Fatalf("second toggle error = %v", err)
	}
	if second.IsLiked || second.LikeCount != 0 {
		t.Errorf("second toggle = (%v, %d), want (false, 0)", second.IsLiked, second.LikeCount)
	}
}

func TestToggleSaveRoundTrip(t *testing.T) {
	food := &entities.FoodItem{ID: uuid.New(), Name: "Soup"}
	repo := newFakeEngagementRepository(food)
	service := NewEngagementService(repo)

	userID := uuid.NewString()
	foodID := food.ID.String()

	first, err := service.ToggleSave(context.Background(), userID, foodID)
	if err != nil {
		t.Fatalf("first toggle error = %v", err)
	}
	if !first.IsSaved || first.SavesCount != 1 {
		t.Errorf("first toggle = (%v, %d), want (true, 1)", first.IsSaved, first.SavesCount)
	}

	second, err := service.ToggleSave(context.Background(), userID, foodID)
	if err != nil {
		t.Fatalf("second toggle error = %v", err)
	}
	if second.IsSaved || second.SavesCount != 0 {
		t.Errorf("second toggle = (%v, %d), want (false, 0)", second.IsSaved, second.SavesCount)
	}
}

func TestToggleRejections(t *testing.T) {
	food := &entities.FoodItem{ID: uuid.New(), Name: "Soup"}

	tests := []struct {
		name    string
		userID  string
		foodID  string
		wantErr error
	}{
		{"bad user id", "not-a-uuid", food.ID.String(), domain.ErrParseUUID},
		{"bad food id", uuid.NewString(), "not-a-uuid", domain.ErrParseUUID},
		{"unknown food", uuid.NewString(), uuid.NewString(), domain.ErrFoodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewEngagementService(newFakeEngagementRepository(food))

			if _, err := service.ToggleLike(context.Background(), tt.userID, tt.foodID); !errors.Is(err, tt.wantErr) {
				t.Errorf("ToggleLike() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := service.ToggleSave(context.Background(), tt.userID, tt.foodID); !errors.Is(err, tt.wantErr) {
				t.Errorf("ToggleSave() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetSavedFoodsSkipsDanglingRows(t *testing.T) {
	food := &entities.FoodItem{ID: uuid.New(), Name: "Soup"}
	repo := newFakeEngagementRepository(food)
	service := NewEngagementService(repo)

	userID := uuid.NewString()
	if _, err := service.ToggleSave(context.Background(), userID, food.ID.String()); err != nil {
		t.Fatalf("ToggleSave() error = %v", err)
	}

	saved, err := service.GetSavedFoods(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetSavedFoods() error = %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved length = %d, want 1", len(saved))
	}
	if saved[0].Name != "Soup" {
		t.Errorf("saved food name = %q, want %q", saved[0].Name, "Soup")
	}

	// A save whose food row disappeared should be dropped, not crash.
	repo.food = nil
	saved, err = service.GetSavedFoods(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetSavedFoods() error = %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("dangling saves produced %d response items, want 0", len(saved))
	}
}
