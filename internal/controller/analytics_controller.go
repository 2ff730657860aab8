package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 管理后台统计
// @Description 使用量、近期生成记录、本月学时和达标人数
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response{data=model.AdminStats}
// @Failure 403 {object} util.Response
// @Router /api/admin/stats [get]
func (c *AnalyticsController) GetStats(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.AnalyticsService.AdminStats(admin)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 学习分析
// @Description 部门学时、技能趋势和学习平台排行
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response{data=model.LearningAnalytics}
// @Failure 403 {object} util.Response
// @Router /api/admin/learning-analytics [get]
func (c *AnalyticsController) GetLearningAnalytics(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	analytics, err := c.AnalyticsService.LearningAnalytics(admin)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}
