package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// @Summary 已审核的学习资源
// @Tags 资源
// @Produce json
// @Param category query string false "分类"
// @Success 200 {object} util.Response
// @Router /api/resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	resources, err := c.ResourceService.ListApproved(ctx.Query("category"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// @Summary 待审核资源
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/resources/pending [get]
func (c *ResourceController) GetPendingResources(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	resources, err := c.ResourceService.ListPending(admin)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// @Summary 审核通过资源
// @Tags 管理
// @Produce json
// @Param id path int true "资源ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/resources/{id}/approve [post]
func (c *ResourceController) ApproveResource(ctx *gin.Context) {
	admin := util.GetUserFromContext(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}

	resource, err := c.ResourceService.Approve(admin, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, resource)
}
