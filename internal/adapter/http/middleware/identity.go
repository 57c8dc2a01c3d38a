package middleware

import (
	"log"
	"net/http"
	"strings"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/pkg"

	"github.com/gin-gonic/gin"
)

// Identity headers are set by the API gateway after it has validated the caller's
// token; this service trusts them as-is.
const (
	HeaderUserSubject = "X-User-Subject"
	HeaderUserRoles   = "X-User-Roles"

	actorKey = "actor"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)

// Identity turns the gateway headers into an entities.Actor stored in the context.
// Requests without a subject or a recognised role are rejected with 401.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := strings.TrimSpace(c.GetHeader(HeaderUserSubject))
		roles := entities.ParseRoleSet(c.GetHeader(HeaderUserRoles))
		if subject == "" || len(roles) == 0 {
			log.Printf("[identity][middleware] rejected path=%s subject_present=%t roles=%q", c.FullPath(), subject != "", c.GetHeader(HeaderUserRoles))
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		c.Set(actorKey, entities.Actor{ID: subject, Roles: roles})
		c.Next()
	}
}

// ActorFrom returns the actor stored by Identity. ok is false outside that middleware.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
