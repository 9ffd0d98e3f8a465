package postgres

import (
	"context"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type giftRepository struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) *giftRepository {
	return &giftRepository{db: db}
}

func (r *giftRepository) Create(ctx context.Context, gift *domain.Gift) error {
	return r.db.WithContext(ctx).Create(gift).Error
}

// GetByOwner returns the caller's gifts in storage order. No explicit sort;
// order is not guaranteed stable across calls.
func (r *giftRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Gift, error) {
	var gifts []*domain.Gift
	err := r.db.WithContext(ctx).Find(&gifts, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, err
	}
	return gifts, nil
}

func (r *giftRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Gift, error) {
	var gift domain.Gift
	err := r.db.WithContext(ctx).First(&gift, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &gift, nil
}

func (r *giftRepository) Update(ctx context.Context, gift *domain.Gift) error {
	return r.db.WithContext(ctx).Save(gift).Error
}

// DeleteByIDAndOwner deletes only when both id and owner match, so a gift
// belonging to another user reads as not found.
func (r *giftRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Gift{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
