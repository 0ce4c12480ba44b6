package rest

import (
	"net/http"

	"github.com/dmitrijs2005/droply/internal/common"
	"github.com/dmitrijs2005/droply/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// accessTokenMiddleware resolves the caller's verified identity from the
// access-token header and fails closed with 401 when it is absent or
// invalid. Every API route runs behind it.
func (s *Server) accessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AccessTokenHeaderName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
