package util

import (
	"badge_studio_backend/internal/model"
	"crypto/rand"
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

// GenerateSessionToken 32 字节随机数的 base64url 编码
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func GetUserFromContext(c *gin.Context) *model.User {
	user, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	u, ok := user.(*model.User)
	if !ok {
		return nil
	}
	return u
}
