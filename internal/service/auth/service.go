package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	adminRepo    admin.ProfileRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(adminRepo admin.ProfileRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. Admin profiles are checked before
// employees so an admin and an employee can never share a username silently.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	actor, name, avatar, hash, err := a.resolveAccount(ctx, req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if hash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(actor)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(actor)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		ActorID:               actor.ID,
		Name:                  name,
		Role:                  string(actor.Role),
		Avatar:                avatar,
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

func (a *AuthServiceImpl) resolveAccount(ctx context.Context, username string) (auth.Actor, string, string, string, error) {
	profile, err := a.adminRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		actor := auth.Actor{ID: profile.ID, Role: auth.RoleAdmin}
		return actor, profile.Name, profile.Avatar, profile.PasswordHash, nil
	case !errors.Is(err, admin.ErrProfileNotFound):
		return auth.Actor{}, "", "", "", fmt.Errorf("failed to look up admin profile: %w", err)
	}

	emp, err := a.employeeRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		actor := auth.Actor{ID: emp.ID, Role: auth.RoleEmployee}
		return actor, emp.Name, emp.Avatar, emp.PasswordHash, nil
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return auth.Actor{}, "", "", "", auth.ErrInvalidCredentials
	default:
		return auth.Actor{}, "", "", "", fmt.Errorf("failed to look up employee: %w", err)
	}
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	actor, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	// The account may have been deleted since the token was issued.
	if actor.Role == auth.RoleAdmin {
		if _, err := a.adminRepo.GetByID(ctx, actor.ID); err != nil {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
	} else {
		if _, err := a.employeeRepo.GetByID(ctx, actor.ID); err != nil {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(actor)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return err
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}
