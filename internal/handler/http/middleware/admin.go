package middleware

import (
	"net/http"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

// AdminOnly requires the authenticated actor to carry the admin role. It must
// run after AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := auth.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !actor.IsAdmin() {
			response.HandleError(w, auth.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SelfOrAdmin lets an admin act on any resource and an employee only on their
// own, where ownerID names the employee the route touches.
func SelfOrAdmin(actor auth.Actor, ownerID string) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}
