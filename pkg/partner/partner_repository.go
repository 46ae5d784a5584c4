package partner

import (
	"context"

	"github.com/SiddharthChaturvedii/FoodView/entities"
	"gorm.io/gorm"
)

type (
	PartnerRepository interface {
		CreatePartner(ctx context.Context, partner *entities.FoodPartner) error
		GetPartnerByEmail(ctx context.Context, email string) (*entities.FoodPartner, error)
		GetPartnerByID(ctx context.Context, id string) (*entities.FoodPartner, error)
		UpdatePartner(ctx context.Context, partner *entities.FoodPartner) error
	}

	partnerRepository struct {
		db *gorm.DB
	}
)

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) CreatePartner(ctx context.Context, partner *entities.FoodPartner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *partnerRepository) GetPartnerByEmail(ctx context.Context, email string) (*entities.FoodPartner, error) {
	var partner entities.FoodPartner
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&partner).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) GetPartnerByID(ctx context.Context, id string) (*entities.FoodPartner, error) {
	var partner entities.FoodPartner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) UpdatePartner(ctx context.Context, partner *entities.FoodPartner) error {
	return r.db.WithContext(ctx).Save(partner).Error
}
