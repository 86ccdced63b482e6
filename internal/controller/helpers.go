package controller

import (
	"road_scholar_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated caller, answering 401 when there is none.
func currentUser(ctx *gin.Context) (*util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, false
	}
	return claims, true
}

// pathID parses a numeric path parameter, answering 400 when it is malformed.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := util.ParamID(ctx, name)
	if err != nil {
		util.HandleError(ctx, err)
		return 0, false
	}
	return id, true
}
