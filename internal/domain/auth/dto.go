package auth

import (
	"github.com/attendly/hrops-backend/internal/pkg/validator"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) || validator.IsEmpty(r.Email) ||
		validator.IsEmpty(r.Password) || validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "all fields required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if !validator.IsEmpty(r.Role) && !validator.IsInSlice(r.Role, Roles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID      int64  `json:"userId"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type ResetLookupRequest struct {
	Email string `json:"email"`
}

type ResetLookupResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}
