package auth

import "context"

// Role identifies which side of the application an authenticated user belongs to.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Actor is the authenticated principal: an admin profile or an employee.
// It is resolved once at login, carried in the token claims and rebuilt by the
// auth middleware, so services never re-derive the role from ID lookups.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// FromClaims rebuilds an Actor from decoded token claims.
func FromClaims(claims map[string]interface{}) (Actor, error) {
	id, ok := claims["actor_id"].(string)
	if !ok || id == "" {
		return Actor{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Actor{}, ErrInvalidToken
	}

	role := Role(roleStr)
	if role != RoleAdmin && role != RoleEmployee {
		return Actor{}, ErrInvalidToken
	}

	return Actor{ID: id, Role: role}, nil
}

type actorContextKey struct{}

// WithActor returns a context carrying the authenticated actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext retrieves the authenticated actor placed by the auth middleware.
func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	if !ok {
		return Actor{}, ErrInvalidToken
	}
	return actor, nil
}
