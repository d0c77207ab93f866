package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

var errMissingIdentity = errors.New("missing user identity headers")

// IdentityMiddleware resolves the acting user from the X-User-ID and
// X-User-Name headers set by the authenticating proxy in front of this
// service. Authentication itself never happens here.
type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.GetHeader("X-User-ID")
		if idStr == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "User identity required", nil)
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Invalid user identity", nil)
			return
		}

		c.Set(actorContextKey, booking.Actor{
			ID:   id,
			Name: c.GetHeader("X-User-Name"),
		})
		c.Next()
	}
}

func GetActor(c *gin.Context) (booking.Actor, bool) {
	v, exists := c.Get(actorContextKey)
	if !exists {
		return booking.Actor{}, false
	}
	actor, ok := v.(booking.Actor)
	return actor, ok
}
