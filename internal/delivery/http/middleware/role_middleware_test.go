package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hospital-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireRoleAllows(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleAdmin)(next).ServeHTTP(rec, requestWithRole("admin"))

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleAdmin)(next).ServeHTTP(rec, requestWithRole("patient"))

	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutClaim(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleAdmin)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaff(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"receptionist", http.StatusOK},
		{"doctor", http.StatusForbidden},
		{"patient", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			next, _ := okHandler()
			rec := httptest.NewRecorder()

			RequireStaff(next).ServeHTTP(rec, requestWithRole(tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireDoctor(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"doctor", http.StatusOK},
		{"admin", http.StatusForbidden},
		{"receptionist", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			next, _ := okHandler()
			rec := httptest.NewRecorder()

			RequireDoctor(next).ServeHTTP(rec, requestWithRole(tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, uint(7))
	ctx = context.WithValue(ctx, UserEmailKey, "doc@example.com")
	ctx = context.WithValue(ctx, UserRoleKey, "doctor")
	ctx = context.WithValue(ctx, TokenIDKey, "token-id")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)

	email, ok := GetUserEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "doc@example.com", email)

	role, ok := GetUserRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "doctor", role)

	tokenID, ok := GetTokenIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-id", tokenID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
