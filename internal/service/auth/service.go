package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/auth"
	"github.com/gajikita/selaras-backend/internal/domain/user"
	"github.com/gajikita/selaras-backend/internal/pkg/jwt"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Register implements auth.AuthService. New accounts are created as staff;
// role elevation is a manual operation.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         user.RoleStaff,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, err := a.issueTokens(userData)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User:  toUserResponse(userData),
		Token: token,
	}, nil
}

// Refresh implements auth.AuthService. The old refresh token is revoked so
// each refresh token is single-use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := a.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.validateRefreshToken(refreshToken); err != nil {
		return err
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	var token auth.TokenResponse
	var err error

	token.AccessToken, token.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	token.RefreshToken, token.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return token, nil
}

func (a *AuthServiceImpl) validateRefreshToken(refreshToken string) (userID string, err error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}
	if a.Service.IsTokenRevoked(refreshToken) {
		return "", auth.ErrTokenRevoked
	}

	parsed, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	tokenType, _ := parsed.Get("type")
	if tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	if parsed.Expiration().Before(time.Now()) {
		return "", auth.ErrTokenExpired
	}

	id, ok := parsed.Get("user_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	userID, ok = id.(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}
