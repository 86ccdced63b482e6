package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// ListQuestions godoc
// @Summary List questions
// @Tags Questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.QuestionService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	question, err := c.QuestionService.Show(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// CreateQuestion godoc
// @Summary Create a question with its choices
// @Tags Questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "activity not found"
// @Router /api/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question, err := c.QuestionService.Create(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Update a question and replace its choice set
// @Description Choices with an id are updated, choices without one are created, the rest are removed
// @Tags Questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Param body body service.QuestionRequest true "Question"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question, err := c.QuestionService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.QuestionService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Question deleted successfully", nil)
}

// UploadImage godoc
// @Summary Set a question's image
// @Tags Questions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Param file formData file true "Image"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/questions/{id}/image [post]
func (c *QuestionController) UploadImage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	question, err := c.QuestionService.UploadImage(ctx.Request.Context(), id, file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// ListChoices godoc
// @Summary List choices
// @Tags Choices
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Choice}
// @Router /api/choices [get]
func (c *QuestionController) ListChoices(ctx *gin.Context) {
	choices, err := c.QuestionService.ListChoices(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, choices)
}

// GetChoice godoc
// @Summary Get a choice
// @Tags Choices
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Choice ID"
// @Success 200 {object} util.Response{data=model.Choice}
// @Failure 404 {object} util.Response
// @Router /api/choices/{id} [get]
func (c *QuestionController) GetChoice(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	choice, err := c.QuestionService.ShowChoice(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, choice)
}

// CreateChoice godoc
// @Summary Add a choice to a question
// @Tags Choices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ChoiceRequest true "Choice"
// @Success 201 {object} util.Response{data=model.Choice}
// @Failure 404 {object} util.Response "question not found"
// @Router /api/choices [post]
func (c *QuestionController) CreateChoice(ctx *gin.Context) {
	var req service.ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	choice, err := c.QuestionService.CreateChoice(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, choice)
}

// UpdateChoice godoc
// @Summary Update a choice
// @Tags Choices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Choice ID"
// @Param body body service.ChoiceRequest true "Choice"
// @Success 200 {object} util.Response{data=model.Choice}
// @Failure 404 {object} util.Response
// @Router /api/choices/{id} [put]
func (c *QuestionController) UpdateChoice(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req service.ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	choice, err := c.QuestionService.UpdateChoice(ctx.Request.Context(), id, &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, choice)
}

// DeleteChoice godoc
// @Summary Delete a choice
// @Tags Choices
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Choice ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/choices/{id} [delete]
func (c *QuestionController) DeleteChoice(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.QuestionService.DeleteChoice(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Choice deleted successfully", nil)
}
