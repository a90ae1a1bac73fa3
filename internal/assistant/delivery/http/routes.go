package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extra middleware (rate limiting) applies to every route in the group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	rg.Use(mw...)
	rg.POST("/route", h.Route)
	rg.POST("/execute", h.Execute)
	rg.POST("/judge", h.Judge)
	rg.POST("/feedback", h.Feedback)
}
