package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// @Summary 创建员工档案
// @Tags 档案
// @Accept json
// @Produce json
// @Param profile body service.ProfileRequest true "档案信息"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "档案已存在"
// @Router /api/profile [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Create(user.ID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, profile)
}

// @Summary 获取自己的档案
// @Tags 档案
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "档案不存在"
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.Get(user.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 更新自己的档案
// @Tags 档案
// @Accept json
// @Produce json
// @Param profile body service.ProfileRequest true "档案信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "档案不存在"
// @Router /api/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Update(user.ID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
