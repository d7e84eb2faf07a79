package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/hrops-backend/internal/domain/auth"
)

type stubAuthService struct {
	registerErr error
	loginResp   auth.LoginResponse
	loginErr    error
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	return nil
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, req auth.ResetLookupRequest) (auth.ResetLookupResponse, error) {
	return auth.ResetLookupResponse{Success: true, Message: "Email exists. Proceed to reset."}, nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRegisterInvalidJSON(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/employee/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestRegisterValidationFailure(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	payload := `{"fullName":"","email":"bad","password":"","role":"hr"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employee/auth/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRegisterSuccess(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	payload := `{"fullName":"Priya N","email":"priya@attendly.dev","password":"secret123","role":"hr"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employee/auth/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{registerErr: auth.ErrEmailExists})

	payload := `{"fullName":"Priya N","email":"priya@attendly.dev","password":"secret123","role":"hr"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employee/auth/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{loginErr: auth.ErrInvalidCredentials})

	payload := `{"email":"priya@attendly.dev","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employee/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginResp: auth.LoginResponse{
			UserID:      7,
			Email:       "priya@attendly.dev",
			Role:        "hr",
			AccessToken: "token",
		},
	})

	payload := `{"email":"priya@attendly.dev","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employee/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "token", data["accessToken"])
	assert.Equal(t, "hr", data["role"])
}
