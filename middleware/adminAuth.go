package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"glamora/utils"
)

// AdminAuthMiddleware accepts either a Firebase ID token carrying the
// "admin" custom claim or an internal JWT whose role is admin.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if utils.FirebaseAuthClient != nil {
			if token, err := utils.FirebaseAuthClient.VerifyIDToken(c.Request.Context(), tokenString); err == nil {
				if isAdmin, ok := token.Claims["admin"].(bool); ok && isAdmin {
					c.Set("adminUID", token.UID)
					c.Set("isAdmin", true)
					c.Next()
					return
				}
			}
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err == nil && role == "admin" {
			c.Set("userID", userID)
			c.Set("role", role)
			c.Set("isAdmin", true)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
	}
}

// FirebaseAdminMiddleware authenticates admin requests with a Firebase ID
// token carrying the "admin" custom claim.
func FirebaseAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if utils.FirebaseAuthClient == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin authentication unavailable"})
			return
		}

		token, err := utils.FirebaseAuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		if isAdmin, ok := token.Claims["admin"].(bool); !ok || !isAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminUID", token.UID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
