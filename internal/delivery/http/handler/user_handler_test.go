package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hospital-management/config"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/jwt"
	"go-hospital-management/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserUsecase struct {
	registerErr error
	loginRes    *dto.LoginResponse
	loginErr    error
	updateErr   error
	deleteErr   error
	usersByRole []dto.UserResponse
}

func (s *stubUserUsecase) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &dto.UserResponse{ID: 1, Name: req.Name, Email: req.Email, Role: req.Role}, nil
}

func (s *stubUserUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginRes, s.loginErr
}

func (s *stubUserUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubUserUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{}, nil
}

func (s *stubUserUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

func (s *stubUserUsecase) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.UserResponse{ID: id}, nil
}

func (s *stubUserUsecase) DeleteUser(ctx context.Context, id uint) error {
	return s.deleteErr
}

func (s *stubUserUsecase) GetUsersByRole(ctx context.Context, role entity.UserRole) ([]dto.UserResponse, error) {
	return s.usersByRole, nil
}

func newUserHandler(uc usecase.UserUsecase) *UserHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewUserHandler(uc, validator.NewValidator(), jwtService)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func postJSON(t *testing.T, target string, payload interface{}) *http.Request {
	t.Helper()
	buf, err := json.Marshal(payload)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader(buf))
}

func TestRegisterSuccess(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{})
	rec := httptest.NewRecorder()

	h.Register(rec, postJSON(t, "/user/add", dto.RegisterUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     "receptionist",
	}))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(http.StatusCreated), body["status"])
	assert.Equal(t, "User created successfully", body["message"])
}

func TestRegisterValidationErrors(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{})
	rec := httptest.NewRecorder()

	h.Register(rec, postJSON(t, "/user/add", dto.RegisterUserRequest{
		Name:     "Jane Doe",
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	}))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
	assert.Contains(t, errors, "role")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{registerErr: usecase.ErrUserEmailTaken})
	rec := httptest.NewRecorder()

	h.Register(rec, postJSON(t, "/user/add", dto.RegisterUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     "patient",
	}))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	emailErrors, ok := errors["email"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, emailErrors, "The email has already been taken.")
}

func TestRegisterInvalidBody(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{})
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/user/add", bytes.NewReader([]byte("{not json")))
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginWrongEmail(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{loginErr: usecase.ErrWrongEmail})
	rec := httptest.NewRecorder()

	h.Login(rec, postJSON(t, "/user/login", dto.LoginRequest{
		Email:    "missing@example.com",
		Password: "password123",
	}))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Wrong Email", body["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{loginErr: usecase.ErrWrongPassword})
	rec := httptest.NewRecorder()

	h.Login(rec, postJSON(t, "/user/login", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrongpassword",
	}))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Wrong Password", body["message"])
}

func TestLoginSuccess(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{loginRes: &dto.LoginResponse{
		User:  dto.UserResponse{ID: 1, Email: "jane@example.com", Role: "admin"},
		Token: dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900},
	}})
	rec := httptest.NewRecorder()

	h.Login(rec, postJSON(t, "/user/login", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	}))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User successfully logged in", body["message"])
	assert.Contains(t, body, "user")
	assert.Contains(t, body, "token")

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, user, "password")
}

func TestListUsersByRoleEnvelopeKeys(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{usersByRole: []dto.UserResponse{}})

	tests := []struct {
		name string
		call func(http.ResponseWriter, *http.Request)
		key  string
	}{
		{"patients", h.GetPatientUsers, "patients"},
		{"doctors", h.GetDoctorUsers, "doctors"},
		{"receptionists", h.GetReceptionistUsers, "receptionists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(rec, httptest.NewRequest(http.MethodGet, "/user/"+tt.name+"/list", nil))

			body := decodeEnvelope(t, rec)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, body, tt.key)
		})
	}
}
