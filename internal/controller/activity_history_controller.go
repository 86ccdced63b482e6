package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityHistoryController struct {
	ProgressService *service.ProgressService
}

func NewActivityHistoryController(progressService *service.ProgressService) *ActivityHistoryController {
	return &ActivityHistoryController{ProgressService: progressService}
}

// ListHistory godoc
// @Summary Caller's quiz history
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ActivityHistory}
// @Router /api/activity-history [get]
func (c *ActivityHistoryController) ListHistory(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	history, err := c.ProgressService.History(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// ListUserHistory godoc
// @Summary A user's quiz history
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {object} util.Response{data=[]model.ActivityHistory}
// @Failure 404 {object} util.Response
// @Router /api/activity-history/user/{userId} [get]
func (c *ActivityHistoryController) ListUserHistory(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	history, err := c.ProgressService.HistoryOf(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// GetHistory godoc
// @Summary One attempt
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "History ID"
// @Success 200 {object} util.Response{data=model.ActivityHistory}
// @Failure 404 {object} util.Response
// @Router /api/activity-history/{id} [get]
func (c *ActivityHistoryController) GetHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	history, err := c.ProgressService.FindHistory(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// UpdateHistory godoc
// @Summary Correct an attempt
// @Tags ActivityHistory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "History ID"
// @Param body body service.UpdateHistoryRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.ActivityHistory}
// @Failure 404 {object} util.Response
// @Router /api/activity-history/{id} [put]
func (c *ActivityHistoryController) UpdateHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req service.UpdateHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	history, err := c.ProgressService.UpdateHistory(ctx.Request.Context(), id, &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// DeleteHistory godoc
// @Summary Delete an attempt
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "History ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/activity-history/{id} [delete]
func (c *ActivityHistoryController) DeleteHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.ProgressService.DeleteHistory(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Activity history deleted successfully", nil)
}

// Leaderboard godoc
// @Summary Caller's leaderboard standing
// @Description Sums the latest score per activity for every user and ranks the caller
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.LeaderboardStanding}
// @Router /api/activity-history/leaderboards [get]
func (c *ActivityHistoryController) Leaderboard(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	standing, err := c.ProgressService.Standing(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, standing)
}

// Engagement godoc
// @Summary Caller's lesson engagement
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Engagement}
// @Router /api/activity-history/engagements [get]
func (c *ActivityHistoryController) Engagement(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	engagement, err := c.ProgressService.Engagement(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, engagement)
}

// TotalModuleHours godoc
// @Summary Caller's total lesson time
// @Tags ActivityHistory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ModuleHours}
// @Router /api/activity-history/getTotalModuleHours [get]
func (c *ActivityHistoryController) TotalModuleHours(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	hours, err := c.ProgressService.ModuleHours(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, hours)
}
