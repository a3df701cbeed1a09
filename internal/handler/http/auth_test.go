package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/auth"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService returns a canned token pair for every auth operation.
type fakeAuthService struct {
	pair auth.TokenPair
}

func (f *fakeAuthService) Signup(_ context.Context, _ auth.SignupRequest) (auth.AuthResponse, error) {
	return auth.AuthResponse{Token: f.pair}, nil
}

func (f *fakeAuthService) Login(_ context.Context, _ auth.LoginRequest) (auth.AuthResponse, error) {
	return auth.AuthResponse{Token: f.pair}, nil
}

func (f *fakeAuthService) Refresh(_ context.Context, _ string) (auth.TokenPair, error) {
	return f.pair, nil
}

func (f *fakeAuthService) Logout(_ context.Context, _ string) error { return nil }

func (f *fakeAuthService) ForgotPassword(_ context.Context, _ auth.ForgotPasswordRequest) error {
	return nil
}

func (f *fakeAuthService) ResetPassword(_ context.Context, _ auth.ResetPasswordRequest) error {
	return nil
}

func (f *fakeAuthService) Me(_ context.Context) (user.PublicUser, error) {
	return user.PublicUser{}, nil
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			return cookie
		}
	}
	t.Fatal("refresh_token cookie not set")
	return nil
}

func TestLoginCookieOutlivesAccessToken(t *testing.T) {
	now := time.Now()
	pair := auth.TokenPair{
		AccessToken:      "access",
		RefreshToken:     "refresh",
		ExpiresAt:        now.Add(15 * time.Minute).Unix(),
		RefreshExpiresAt: now.Add(168 * time.Hour).Unix(),
	}
	handler := NewAuthHandler(jwt.NewJWTService("test-secret", "15m", "168h"), &fakeAuthService{pair: pair})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"alice@example.com","password":"correct-horse"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := refreshCookie(t, rec)
	assert.Equal(t, "refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	// The cookie must carry the refresh token's own lifetime, not the access
	// token's much shorter one.
	assert.Greater(t, time.Until(cookie.Expires), 167*time.Hour)
}

func TestRefreshRotatesCookieWithRefreshLifetime(t *testing.T) {
	now := time.Now()
	pair := auth.TokenPair{
		AccessToken:      "access",
		RefreshToken:     "rotated",
		ExpiresAt:        now.Add(15 * time.Minute).Unix(),
		RefreshExpiresAt: now.Add(168 * time.Hour).Unix(),
	}
	handler := NewAuthHandler(jwt.NewJWTService("test-secret", "15m", "168h"), &fakeAuthService{pair: pair})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refreshToken":"old"}`))
	rec := httptest.NewRecorder()
	handler.RefreshToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := refreshCookie(t, rec)
	assert.Equal(t, "rotated", cookie.Value)
	assert.Greater(t, time.Until(cookie.Expires), 167*time.Hour)
}

func TestLogoutExpiresCookie(t *testing.T) {
	handler := NewAuthHandler(jwt.NewJWTService("test-secret", "15m", "168h"), &fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := refreshCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
