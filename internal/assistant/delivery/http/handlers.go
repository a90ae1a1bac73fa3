package http

import (
	"github.com/gin-gonic/gin"

	"agentforge/pkg/response"
)

// Route godoc
// @Summary     Classify a request
// @Description Resolves free text to a task category by catalog similarity, falling back to the model when unsure.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Text to classify"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Encoder unavailable"
// @Router      /api/v1/assistant/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Execute godoc
// @Summary     Run a category handler
// @Description Runs the handler for the given category, or routes the text first when category is omitted.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Request"
// @Success     200  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Generation failed"
// @Failure     503  {object} response.Resp "Encoder unavailable"
// @Router      /api/v1/assistant/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Execute(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExecuteResp(output))
}

// Judge godoc
// @Summary     Grade an output
// @Description Asks the model to rate an output on five criteria. A non-JSON verdict is returned with valid=false.
// @Tags        Evaluation
// @Accept      json
// @Produce     json
// @Param       body body judgeReq true "Task and output"
// @Success     200  {object} judgeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Judge failed"
// @Router      /api/v1/assistant/judge [POST]
func (h *handler) Judge(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processJudgeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Judge(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Judge: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newJudgeResp(output))
}

// Feedback godoc
// @Summary     Record human feedback
// @Description Stores a 1-10 rating for an output. A blank rating counts as 10.
// @Tags        Evaluation
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Rating"
// @Success     200  {object} feedbackResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Feedback(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Feedback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFeedbackResp(output))
}
