package http

import (
	"github.com/gin-gonic/gin"

	"agentforge/internal/assistant"
	"agentforge/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	Execute(c *gin.Context)
	Judge(c *gin.Context)
	Feedback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  log.OrNop(l),
		uc: uc,
	}
}
