package middleware

import (
	"errors"
	"net/http"
	"strings"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase"
	"atelie/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const actorKey = "atelie.actor"

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Faça login para continuar", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Você não tem permissão para acessar esta área", http.StatusForbidden)
)

// Authenticate resolves an optional "Authorization: Bearer <token>" header
// into an Actor stored in the gin context. Requests without a header pass
// through anonymous; an invalid token is rejected with 401.
func Authenticate(auth usecase.IAuthUseCase, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("http.auth")
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usecase.ErrUnauthenticated) {
				log.Warn("token verification failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if actor != nil {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// RequireStaff only lets admins and editors through.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if !actor.IsStaff() {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if actor.Role != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated actor of the request, or nil.
func Actor(c *gin.Context) *entities.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*entities.Actor)
	return actor
}

// SetActor is used by tests and by Authenticate.
func SetActor(c *gin.Context, actor *entities.Actor) {
	c.Set(actorKey, actor)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
