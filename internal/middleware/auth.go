package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	UserIDKey = "userID"
	ClaimsKey = "claims"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// token's claims on the context.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Access token required"})
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("RequireAuth: Rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUserID returns the id stored by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
