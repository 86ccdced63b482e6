package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Registration details"
// @Success 201 {object} util.Response{data=service.TokenResponse}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "email or username taken"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	token, err := c.AuthService.Register(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, token)
}

// Login godoc
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=service.TokenResponse}
// @Failure 401 {object} util.Response
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	token, err := c.AuthService.Login(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, token)
}

// RegisterWithGoogle godoc
// @Summary Sign up (or in) with a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.GoogleRequest true "Google ID token"
// @Success 200 {object} util.Response{data=service.TokenResponse}
// @Failure 401 {object} util.Response
// @Router /auth/register/google [post]
func (c *AuthController) RegisterWithGoogle(ctx *gin.Context) {
	var req service.GoogleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	token, err := c.AuthService.RegisterWithGoogle(ctx.Request.Context(), req.IDToken)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, token)
}

// LoginWithGoogle godoc
// @Summary Log in with a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.GoogleRequest true "Google ID token"
// @Success 200 {object} util.Response{data=service.TokenResponse}
// @Failure 401 {object} util.Response "not registered or token rejected"
// @Router /auth/login/google [post]
func (c *AuthController) LoginWithGoogle(ctx *gin.Context) {
	var req service.GoogleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	token, err := c.AuthService.LoginWithGoogle(ctx.Request.Context(), req.IDToken)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, token)
}

// Me godoc
// @Summary Current user
// @Description The caller with quiz history and bookmarks
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	user, err := c.AuthService.Me(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
