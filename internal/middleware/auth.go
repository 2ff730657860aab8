package middleware

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/util"
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authenticator 由 service.AuthService 实现
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// SessionToken 优先读取 cookie，其次是 Authorization: Bearer
func SessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func SessionMiddleware(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, util.ErrUnauthenticated) {
				util.Unauthorized(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, user)
		c.Next()
	}
}

// RequireCapability 所有受保护路由唯一的权限检查
func RequireCapability(capability model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !user.Can(capability) {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
