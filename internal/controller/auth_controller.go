package controller

import (
	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Cfg         config.AuthConfig
}

func NewAuthController(authService *service.AuthService, cfg config.AuthConfig) *AuthController {
	return &AuthController{
		AuthService: authService,
		Cfg:         cfg,
	}
}

// LoginRequest defines model for login
// swagger:model LoginRequest
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Cfg.CookieName, token, maxAge, "/", "", c.Cfg.CookieSecure, true)
}

// Login godoc
// @Summary 按名字登录
// @Description 名字不存在时自动创建用户，每次登录都会使之前的会话失效
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=object} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(ctx.Request.Context(), req.Name)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, c.Cfg.CookieMaxAge())
	util.Success(ctx, gin.H{
		"user":          user,
		"session_token": token,
	})
}

// Logout godoc
// @Summary 登出
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "未登录"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), user); err != nil {
		util.RespondError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, "", -1)
	util.Success(ctx, nil)
}

// Me godoc
// @Summary 当前用户
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "未登录"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
