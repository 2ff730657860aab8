package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// Generate godoc
// @Summary 生成徽章和 LinkedIn 帖子
// @Description 调用生成服务写文案，渲染 SVG 徽章并以 data URI 返回
// @Tags 徽章
// @Accept  json
// @Produce  json
// @Param   body body service.GenerateRequest true "员工姓名、学习内容和难度"
// @Success 200 {object} util.Response{data=service.GenerateResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未登录"
// @Failure 502 {object} util.Response "生成服务错误"
// @Router /api/generate [post]
func (c *BadgeController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.BadgeService.Generate(ctx.Request.Context(), user, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
