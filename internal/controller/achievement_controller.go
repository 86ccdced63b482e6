package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary Caller's badges
// @Description Recomputed on every call from lesson views and best quiz scores
// @Tags Achievements
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Badge}
// @Router /api/user/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	badges, err := c.AchievementService.Achievements(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}
