package middleware

import (
	"context"
	"net/http"
	"strings"

	"quickscan/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and places the caller's
// identity in the request context. The token hash is checked against the
// auth cache so that sign-out actually revokes tokens; when the cache is
// unavailable the middleware degrades to stateless claim validation.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx := context.Background()
			cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+claims.UserID).Result()
			switch {
			case err == redis.Nil:
				// Signed out, or token issued before the cache entry expired.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
				return
			case err != nil:
				zap.L().Warn("auth cache unavailable, falling back to stateless validation", zap.Error(err))
			case cachedHash != utils.HashToken(tokenString):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}
