package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// EnsureAdminUser provisions the configured admin account on startup if
	// it does not exist yet.
	EnsureAdminUser(ctx context.Context, email, name, password string) error
}
