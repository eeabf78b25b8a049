package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
)

type Service interface {
	GenerateAccessToken(actor auth.Actor) (token string, expiresAt int64, err error)
	GenerateRefreshToken(actor auth.Actor) (token string, expiresAt int64, err error)
	GenerateSSEToken(actor auth.Actor) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (auth.Actor, error)
	ValidateRefreshToken(tokenString string) (auth.Actor, error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(actor auth.Actor) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"actor_id": actor.ID,
		"role":     string(actor.Role),
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(actor auth.Actor) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"actor_id": actor.ID,
		"role":     string(actor.Role),
		"type":     "refresh",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// ValidateRefreshToken validates a refresh token and returns the actor it was
// issued to.
func (j *JWTService) ValidateRefreshToken(tokenString string) (auth.Actor, error) {
	if j.IsTokenRevoked(tokenString) {
		return auth.Actor{}, auth.ErrRefreshTokenRevoked
	}

	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return auth.Actor{}, auth.ErrInvalidToken
	}

	return j.actorFromToken(token, "refresh")
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(actor auth.Actor) (token string, expiresIn int, err error) {
	// SSE tokens are short-lived (5 minutes)
	expiresIn = 300
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"actor_id": actor.ID,
		"role":     string(actor.Role),
		"type":     "sse",
		"exp":      expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns the actor
func (j *JWTService) ValidateSSEToken(tokenString string) (auth.Actor, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return auth.Actor{}, auth.ErrInvalidToken
	}

	return j.actorFromToken(token, "sse")
}

func (j *JWTService) actorFromToken(token jwt.Token, wantType string) (auth.Actor, error) {
	tokenType, ok := token.Get("type")
	if !ok || tokenType != wantType {
		return auth.Actor{}, auth.ErrInvalidToken
	}

	claims := map[string]interface{}{}
	if id, ok := token.Get("actor_id"); ok {
		claims["actor_id"] = id
	}
	if role, ok := token.Get("role"); ok {
		claims["role"] = role
	}

	return auth.FromClaims(claims)
}
