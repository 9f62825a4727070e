package services

import (
	"context"
	"fmt"

	"github.com/inviteleaf/api/internal/models"
)

type AuthService struct {
	authRepo models.AuthRepo
}

func NewAuthService(authRepo models.AuthRepo) *AuthService {
	return &AuthService{
		authRepo: authRepo,
	}
}

func (as *AuthService) Login(ctx context.Context, email, password string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("a valid email is required")
	}
	if err := models.Validate.Var(password, "required,min=6"); err != nil {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	return as.authRepo.AuthenticateAdmin(ctx, email, password)
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (interface{}, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token cannot be empty")
	}

	return as.authRepo.RefreshToken(ctx, refreshToken)
}
