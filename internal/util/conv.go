package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, Invalid("invalid " + name)
	}
	return uint(id), nil
}
