package middleware

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
	userShopKey = contextKey("userShop")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), userIDKey)
}

// GetUserRoleFromContext retrieves the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	s, ok := stringFromCtx(c.Request.Context(), userRoleKey)
	return domain.UserRole(s), ok
}

// GetUserShopFromContext retrieves the authenticated user's shop id. Empty
// for superadmins, who are not bound to a single shop.
func GetUserShopFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), userShopKey)
}

func stringFromCtx(ctx context.Context, key contextKey) (string, bool) {
	val := ctx.Value(key)
	if val == nil {
		return "", false
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
