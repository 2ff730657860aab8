package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Branding Pioneers Badge Generator API"

type StatusController struct {
	StatusService *service.StatusService
}

func NewStatusController(statusService *service.StatusService) *StatusController {
	return &StatusController{StatusService: statusService}
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// @Summary API 根路径
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/ [get]
func (c *StatusController) Root(ctx *gin.Context) {
	util.Success(ctx, gin.H{"message": rootMessage})
}

// @Summary 记录客户端状态检查
// @Tags 系统
// @Accept json
// @Produce json
// @Param body body StatusCheckRequest true "客户端名称"
// @Success 201 {object} util.Response{data=model.StatusCheck}
// @Router /api/status [post]
func (c *StatusController) CreateStatusCheck(ctx *gin.Context) {
	var req StatusCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	check, err := c.StatusService.Create(req.ClientName)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, check)
}

// @Summary 状态检查列表
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/status [get]
func (c *StatusController) GetStatusChecks(ctx *gin.Context) {
	checks, err := c.StatusService.List()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, checks)
}
