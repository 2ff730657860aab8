package controller

import (
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PeerController struct {
	PeerService *service.PeerService
}

func NewPeerController(peerService *service.PeerService) *PeerController {
	return &PeerController{PeerService: peerService}
}

// @Summary 同事列表
// @Tags 同事
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/peers [get]
func (c *PeerController) GetPeers(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	peers, err := c.PeerService.ListPeers(user.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, peers)
}

// @Summary 收藏同事
// @Tags 同事
// @Produce json
// @Param id path int true "用户ID"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "不能收藏自己"
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "已收藏"
// @Router /api/bookmarks/{id} [post]
func (c *PeerController) AddBookmark(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	peerID := util.MustParseUint(ctx.Param("id"))
	if err := c.PeerService.Bookmark(user.ID, peerID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"bookmarked_user_id": peerID})
}

// @Summary 取消收藏
// @Tags 同事
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/bookmarks/{id} [delete]
func (c *PeerController) RemoveBookmark(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PeerService.Unbookmark(user.ID, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 我的收藏
// @Tags 同事
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/bookmarks [get]
func (c *PeerController) GetBookmarks(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	peers, err := c.PeerService.ListBookmarks(user.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, peers)
}
