package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "agentforge/pkg/errors"
)

// bindJSON decodes the body. Malformed or incomplete payloads are a 400.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processJudgeReq(c *gin.Context) (judgeReq, error) {
	var req judgeReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}
