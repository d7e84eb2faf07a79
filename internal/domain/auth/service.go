package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	// RequestPasswordReset checks the email exists and hands back a
	// single-use reset token.
	RequestPasswordReset(ctx context.Context, req ResetLookupRequest) (ResetLookupResponse, error)
}
