package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// @Summary 用户列表
// @Tags 管理
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	page, size := util.ParsePage(ctx.Query("page"), ctx.Query("page_size"))
	result, err := c.AdminService.ListUsers(admin, page, size)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 徽章生成记录
// @Tags 管理
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/badges [get]
func (c *AdminController) GetBadges(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	page, size := util.ParsePage(ctx.Query("page"), ctx.Query("page_size"))
	result, err := c.AdminService.ListBadges(admin, page, size)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 管理员操作审计
// @Tags 管理
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/actions [get]
func (c *AdminController) GetActions(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	page, size := util.ParsePage(ctx.Query("page"), ctx.Query("page_size"))
	result, err := c.AdminService.ListActions(admin, page, size)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
