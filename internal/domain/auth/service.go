package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
