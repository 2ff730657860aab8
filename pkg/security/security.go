package security

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// CORS 仅允许白名单中的 Origin。会话依赖 Cookie，所以必须开启 Credentials
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		// 未配置白名单时回显请求 Origin（开发模式）
		cfg.AllowOrigins = nil
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	}
	return cors.New(cfg)
}

// Secure 中间件
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 防止MIME嗅探
		c.Header("X-Content-Type-Options", "nosniff")
		// 防止点击劫持
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

// RateLimiter 按IP限流，限流器存放在带过期时间的缓存中，空闲IP自动清理
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 {
		maxRequests = 600
	}
	if window <= 0 {
		window = time.Minute
	}

	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	store := cache.New(expiry, time.Minute)

	r := rate.Every(window / time.Duration(maxRequests))

	return func(c *gin.Context) {
		key := c.ClientIP()

		var limiter *rate.Limiter
		if v, found := store.Get(key); found {
			limiter = v.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(r, maxRequests)
			// 并发首次访问时保留先写入者
			if err := store.Add(key, limiter, cache.DefaultExpiration); err != nil {
				if v, found := store.Get(key); found {
					limiter = v.(*rate.Limiter)
				}
			}
		}
		// 刷新过期时间
		store.Set(key, limiter, cache.DefaultExpiration)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "message": "too many requests"})
			return
		}

		c.Next()
	}
}
