package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// actorKey is the key used to store the authenticated staff actor in the
// request context. Using a custom type prevents collisions.
const actorKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated staff actor from the Gin
// context. It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(actorKey)
		if ctxVal != nil {
			if actor, ok := ctxVal.(domain.Actor); ok {
				return actor, true
			}
		}
		return domain.Actor{}, false
	}

	actor, ok := actorVal.(domain.Actor)
	if !ok {
		return domain.Actor{}, false
	}
	return actor, true
}

// WithActor stores the actor in a standard context. Used by the auth
// middleware and by tests that bypass HTTP.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
