package repository

import (
	"context"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type GiftRepository interface {
	Create(ctx context.Context, gift *domain.Gift) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Gift, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Gift, error)
	Update(ctx context.Context, gift *domain.Gift) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}

type Repositories struct {
	User UserRepository
	Gift GiftRepository
}
