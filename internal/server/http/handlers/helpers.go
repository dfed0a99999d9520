package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/f1rstgear/gearflow/internal/server/http/middleware"
)

// CurrentOperatorID extracts the authenticated operator identifier from context.
func CurrentOperatorID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.OperatorIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
