package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MilestoneController struct {
	MilestoneService *service.MilestoneService
}

func NewMilestoneController(milestoneService *service.MilestoneService) *MilestoneController {
	return &MilestoneController{MilestoneService: milestoneService}
}

// @Summary 记录学习里程碑
// @Description 月份按服务器时间（UTC）计算；带来源链接时会登记为待审核资源
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param milestone body service.CreateMilestoneRequest true "里程碑信息"
// @Success 201 {object} util.Response
// @Router /api/milestones [post]
func (c *MilestoneController) CreateMilestone(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateMilestoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	milestone, err := c.MilestoneService.Create(user, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, milestone)
}

// @Summary 获取自己的里程碑
// @Tags 里程碑
// @Produce json
// @Param month query string false "YYYY-MM"
// @Success 200 {object} util.Response
// @Router /api/milestones [get]
func (c *MilestoneController) GetMilestones(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	milestones, err := c.MilestoneService.List(user.ID, ctx.Query("month"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, milestones)
}
