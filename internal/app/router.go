package app

import (
	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/middleware"
	"badge_studio_backend/internal/model"
	"badge_studio_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要登录的路由
	member := router.Group("/api")
	member.Use(
		middleware.SessionMiddleware(a.services.auth, cfg.Auth.CookieName),
		middleware.RequireCapability(model.CapMember),
	)
	a.registerMemberRoutes(member, c)

	// 3. 管理员相关接口
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.SessionMiddleware(a.services.auth, cfg.Auth.CookieName),
		middleware.RequireCapability(model.CapAdmin),
	)
	a.registerAdminRoutes(admin, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/", c.status.Root)
		public.GET("/health", c.health.HealthCheck)
		public.POST("/status", c.status.CreateStatusCheck)
		public.GET("/status", c.status.GetStatusChecks)
		public.POST("/auth/login", c.auth.Login)
	}
}

func (a *App) registerMemberRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/auth/logout", c.auth.Logout)
	rg.GET("/auth/me", c.auth.Me)

	rg.POST("/generate", c.badge.Generate)

	// 档案
	rg.POST("/profile", c.profile.CreateProfile)
	rg.GET("/profile", c.profile.GetProfile)
	rg.PUT("/profile", c.profile.UpdateProfile)

	// 学习目标
	rg.POST("/goals", c.goal.CreateGoal)
	rg.GET("/goals", c.goal.GetGoals)
	rg.GET("/goals/:id", c.goal.GetGoal)
	rg.PUT("/goals/:id", c.goal.UpdateGoal)

	// 里程碑
	rg.POST("/milestones", c.milestone.CreateMilestone)
	rg.GET("/milestones", c.milestone.GetMilestones)

	rg.GET("/resources", c.resource.GetResources)

	// 同事与收藏
	rg.GET("/peers", c.peer.GetPeers)
	rg.GET("/bookmarks", c.peer.GetBookmarks)
	rg.POST("/bookmarks/:id", c.peer.AddBookmark)
	rg.DELETE("/bookmarks/:id", c.peer.RemoveBookmark)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/stats", c.analytics.GetStats)
	rg.GET("/learning-analytics", c.analytics.GetLearningAnalytics)
	rg.GET("/resources/pending", c.resource.GetPendingResources)
	rg.POST("/resources/:id/approve", c.resource.ApproveResource)
	rg.GET("/users", c.admin.GetUsers)
	rg.GET("/badges", c.admin.GetBadges)
	rg.GET("/actions", c.admin.GetActions)
}
