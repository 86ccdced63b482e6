package controller

import (
	"road_scholar_backend/internal/service"
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	BookmarkService *service.BookmarkService
}

func NewBookmarkController(bookmarkService *service.BookmarkService) *BookmarkController {
	return &BookmarkController{BookmarkService: bookmarkService}
}

// ListBookmarks godoc
// @Summary Caller's bookmarked modules
// @Tags Bookmarks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.BookmarkModule}
// @Router /api/bookmark [get]
func (c *BookmarkController) ListBookmarks(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	bookmarks, err := c.BookmarkService.List(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, bookmarks)
}

// ToggleBookmark godoc
// @Summary Bookmark or un-bookmark a module
// @Tags Bookmarks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Module ID"
// @Success 200 {object} util.Response{data=object} "value is true when the module is now bookmarked"
// @Failure 404 {object} util.Response
// @Router /api/bookmark/{id} [post]
func (c *BookmarkController) ToggleBookmark(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	bookmarked, err := c.BookmarkService.Toggle(ctx.Request.Context(), user.UserID, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	message := "Bookmark removed"
	if bookmarked {
		message = "Module bookmarked"
	}
	util.SuccessMessage(ctx, message, gin.H{"value": bookmarked})
}
