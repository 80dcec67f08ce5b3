package middleware

import (
	"net/http"
	"strings"

	"hauling_pros/internal/usecase"
	"hauling_pros/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	SessionCookie    = "admin_session"
	AdminUsernameKey = "admin_username"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// AdminAuth rejects requests without a valid admin session. The token is read
// from the session cookie first, then from a Bearer Authorization header.
func AdminAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.ValidateSession(token)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("[admin][middleware] session rejected")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(AdminUsernameKey, claims.Username)
		c.Next()
	}
}

func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
