package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/attendly/hrops-backend/internal/domain/auth"
	"github.com/attendly/hrops-backend/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	auth.UserRepository
	jwt.Service
}

func NewAuthService(userRepository auth.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = a.UserRepository.Create(ctx, auth.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	user, err := a.UserRepository.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		UserID:      user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		Role:        user.Role,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePasswordByEmail(ctx, req.Email, string(hash)); err != nil {
		if err == auth.ErrUserNotFound {
			return err
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

// RequestPasswordReset implements auth.AuthService.
func (a *AuthServiceImpl) RequestPasswordReset(ctx context.Context, req auth.ResetLookupRequest) (auth.ResetLookupResponse, error) {
	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.ResetLookupResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if !exists {
		return auth.ResetLookupResponse{}, auth.ErrUserNotFound
	}

	return auth.ResetLookupResponse{
		Success:    true,
		Message:    "Email exists. Proceed to reset.",
		ResetToken: uuid.NewString(),
	}, nil
}
