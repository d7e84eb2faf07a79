package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/hrops-backend/internal/domain/auth"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ForgotPasswordRequest(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		slog.Error("Register validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.authService.Register(r.Context(), registerReq); err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered successfully", "email", registerReq.Email)
	response.Created(w, "User created successfully", nil)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully", "email", loginReq.Email)
	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// ForgotPassword implements AuthHandler.
func (a *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var forgotPasswordReq auth.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&forgotPasswordReq); err != nil {
		slog.Error("ForgotPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ForgotPassword(r.Context(), forgotPasswordReq); err != nil {
		slog.Error("ForgotPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Password updated successfully")
	response.SuccessWithMessage(w, "Password has been reset successfully", nil)
}

// ForgotPasswordRequest implements AuthHandler.
func (a *AuthHandlerImpl) ForgotPasswordRequest(w http.ResponseWriter, r *http.Request) {
	var lookupReq auth.ResetLookupRequest

	if err := json.NewDecoder(r.Body).Decode(&lookupReq); err != nil {
		slog.Error("ForgotPasswordRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	lookupResp, err := a.authService.RequestPasswordReset(r.Context(), lookupReq)
	if err != nil {
		slog.Error("ForgotPasswordRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, lookupResp)
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}
