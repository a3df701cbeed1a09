package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/auth"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/email"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

type AuthServiceImpl struct {
	users         user.Repository
	refreshTokens auth.RefreshTokenRepository
	tx            auth.Transactor
	jwtService    jwt.Service
	emailService  email.EmailService
	inviteCode    string
	baseURL       string
}

func NewAuthService(
	users user.Repository,
	refreshTokens auth.RefreshTokenRepository,
	tx auth.Transactor,
	jwtService jwt.Service,
	emailService email.EmailService,
	inviteCode string,
	baseURL string,
) auth.AuthService {
	return &AuthServiceImpl{
		users:         users,
		refreshTokens: refreshTokens,
		tx:            tx,
		jwtService:    jwtService,
		emailService:  emailService,
		inviteCode:    inviteCode,
		baseURL:       baseURL,
	}
}

// Signup implements auth.AuthService.
func (s *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	role := user.Role(req.Role)
	if role == user.RoleAdmin {
		if s.inviteCode == "" {
			return auth.AuthResponse{}, auth.ErrInviteCodeNotConfigured
		}
		if req.InviteCode != s.inviteCode {
			return auth.AuthResponse{}, auth.ErrInvalidInviteCode
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return auth.AuthResponse{}, err
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, created)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{Token: pair, User: user.NewPublicUser(created)}, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	found, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, found)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{Token: pair, User: user.NewPublicUser(found)}, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if refreshToken == "" || s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	if tokenType, ok := decoded.Get("type"); !ok || tokenType != "refresh" {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	known, err := s.refreshTokens.Exists(ctx, refreshToken)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !known {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	userIDVal, ok := decoded.Get("user_id")
	if !ok {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	found, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidToken
		}
		return auth.TokenPair{}, fmt.Errorf("failed to look up user: %w", err)
	}

	// Rotate: the old refresh token dies with the exchange
	s.jwtService.RevokeToken(refreshToken)
	if err := s.refreshTokens.Delete(ctx, refreshToken); err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to delete refresh token: %w", err)
	}

	return s.issueTokenPair(ctx, found)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	s.jwtService.RevokeToken(refreshToken)
	if err := s.refreshTokens.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	return nil
}

// ForgotPassword implements auth.AuthService.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Answer the same either way so the endpoint cannot be used to
			// enumerate registered emails.
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token := uuid.NewString()
	if err := s.users.SetResetToken(ctx, found.ID, hashResetToken(token), time.Now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	go func() {
		if err := s.emailService.SendPasswordReset(found.Email, resetLink); err != nil {
			slog.Error("failed to send password reset email", "user_id", found.ID, "error", err)
		}
	}()

	return nil
}

// ResetPassword implements auth.AuthService.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.users.GetByResetTokenHash(ctx, hashResetToken(req.Token))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// The new password and the session revocation land together or not at all
	return s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.UpdatePassword(ctx, found.ID, string(hash)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := s.refreshTokens.DeleteByUser(ctx, found.ID); err != nil {
			return fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
		return nil
	})
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (user.PublicUser, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.PublicUser{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.PublicUser{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	found, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.PublicUser{}, err
	}

	return user.NewPublicUser(found), nil
}

func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, u user.User) (auth.TokenPair, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Name, u.Role)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokens.Save(ctx, u.ID, refreshToken, time.Unix(refreshExpiresAt, 0)); err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
