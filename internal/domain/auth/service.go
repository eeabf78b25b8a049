package auth

import "context"

// AuthService resolves credentials into an Actor and manages token lifecycles.
type AuthService interface {
	// Login authenticates a username against admin profiles first, then employees.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
