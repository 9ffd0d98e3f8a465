package service

import (
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/config"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/repository"
)

type Services struct {
	Auth *AuthService
	Gift *GiftService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
		Gift: NewGiftService(repos.Gift),
	}
}
