package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalController 处理学习目标的API请求
type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// @Summary 创建学习目标
// @Description 创建新的学习目标，初始状态为 active
// @Tags 学习目标
// @Accept json
// @Produce json
// @Param goal body service.CreateGoalRequest true "学习目标信息"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Create(user.ID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, goal)
}

// @Summary 获取学习目标列表
// @Tags 学习目标
// @Produce json
// @Param status query string false "active/completed/paused"
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) GetGoals(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.List(user.ID, ctx.Query("status"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// @Summary 获取学习目标详情
// @Tags 学习目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goal, err := c.GoalService.Get(user.ID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

// @Summary 更新学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param goal body service.UpdateGoalRequest true "需要更新的字段"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Update(user.ID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}
