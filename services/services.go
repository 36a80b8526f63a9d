package services

import (
	"github.com/blogem/auth-audit/repositories"
)

// Services holds all service instances
type Services struct {
	Auth AuthService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Auth: NewAuthService(repos.Users),
	}
}
