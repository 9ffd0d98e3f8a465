package service

import (
	"context"
	"errors"
	"time"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/domain"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GiftService struct {
	giftRepo repository.GiftRepository
}

func NewGiftService(giftRepo repository.GiftRepository) *GiftService {
	return &GiftService{giftRepo: giftRepo}
}

// GiftInput carries the client-settable fields of a gift. OwnerID is never
// part of it.
type GiftInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Image       string
}

func (s *GiftService) Create(ctx context.Context, ownerID uuid.UUID, input GiftInput) (*domain.Gift, error) {
	gift := &domain.Gift{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.giftRepo.Create(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

func (s *GiftService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Gift, error) {
	return s.giftRepo.GetByOwner(ctx, ownerID)
}

// Update replaces every mutable field of the caller's gift and returns the
// post-update record.
func (s *GiftService) Update(ctx context.Context, ownerID, giftID uuid.UUID, input GiftInput) (*domain.Gift, error) {
	gift, err := s.giftRepo.GetByIDAndOwner(ctx, giftID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, err
	}

	gift.Title = input.Title
	gift.Description = input.Description
	gift.Price = input.Price
	gift.Category = input.Category
	gift.Image = input.Image
	gift.UpdatedAt = time.Now()

	if err := s.giftRepo.Update(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

func (s *GiftService) Delete(ctx context.Context, ownerID, giftID uuid.UUID) error {
	err := s.giftRepo.DeleteByIDAndOwner(ctx, giftID, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrGiftNotFound
	}
	return err
}
