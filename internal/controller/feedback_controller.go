package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// ListFeedback godoc
// @Summary List feedback
// @Tags Feedback
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	feedback, err := c.FeedbackService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}

// GetFeedback godoc
// @Summary Get feedback
// @Tags Feedback
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} util.Response{data=model.Feedback}
// @Failure 404 {object} util.Response
// @Router /api/feedback/{id} [get]
func (c *FeedbackController) GetFeedback(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	feedback, err := c.FeedbackService.Show(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}

// CreateFeedback godoc
// @Summary Leave feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FeedbackRequest true "Feedback"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response
// @Router /api/feedback [post]
func (c *FeedbackController) CreateFeedback(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	feedback, err := c.FeedbackService.Create(ctx.Request.Context(), user.UserID, &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, feedback)
}

// UpdateFeedback godoc
// @Summary Update feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Feedback ID"
// @Param body body service.FeedbackRequest true "Feedback"
// @Success 200 {object} util.Response{data=model.Feedback}
// @Failure 404 {object} util.Response
// @Router /api/feedback/{id} [put]
func (c *FeedbackController) UpdateFeedback(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	feedback, err := c.FeedbackService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Tags Feedback
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/feedback/{id} [delete]
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.FeedbackService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Feedback deleted", nil)
}
