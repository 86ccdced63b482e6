package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// ListActivities godoc
// @Summary List activities
// @Description Every activity with a freshly assembled quiz
// @Tags Activities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Failure 401 {object} util.Response
// @Router /api/activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	activities, err := c.ActivityService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// GetActivity godoc
// @Summary Get an activity
// @Description The activity with up to 14 randomly drawn questions and their choices
// @Tags Activities
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	activity, err := c.ActivityService.Show(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// CreateActivity godoc
// @Summary Create an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ActivityRequest true "Activity"
// @Success 201 {object} util.Response{data=model.Activity}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "module not found"
// @Router /api/activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	activity, err := c.ActivityService.Create(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, activity)
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Param body body service.ActivityRequest true "Activity"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [put]
func (c *ActivityController) UpdateActivity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	activity, err := c.ActivityService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Activities
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [delete]
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.ActivityService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Activity deleted successfully", nil)
}

// SubmitAnswers godoc
// @Summary Submit quiz answers
// @Description Grades the submitted choice ids and records the attempt. All or nothing.
// @Tags Activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Param body body service.SubmitAnswersRequest true "Chosen choice ids and minutes spent"
// @Success 201 {object} util.Response{data=model.ActivityHistory}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/activities/submit/{id} [post]
func (c *ActivityController) SubmitAnswers(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req service.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	history, err := c.ActivityService.SubmitAnswers(ctx.Request.Context(), user.UserID, id, req.Answers, req.Duration)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, history)
}
