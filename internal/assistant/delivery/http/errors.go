package http

import (
	"errors"
	"net/http"

	"agentforge/internal/agent"
	"agentforge/internal/assistant"
	"agentforge/internal/evaluation"
	"agentforge/internal/model"
	"agentforge/internal/router"
	pkgErrors "agentforge/pkg/errors"
	"agentforge/pkg/llmprovider"
)

var badRequestErrors = []error{
	assistant.ErrEmptyText,
	model.ErrUnknownCategory,
	agent.ErrEmptyTask,
	agent.ErrHandlerNotFound,
	evaluation.ErrEmptyTask,
	evaluation.ErrEmptyOutput,
	evaluation.ErrInvalidRating,
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500 without leaking their text.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}

	switch {
	case errors.Is(err, router.ErrEncoderUnavailable),
		errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, agent.ErrGenerationFailed),
		errors.Is(err, agent.ErrEmptyResponse),
		errors.Is(err, evaluation.ErrJudgeFailed),
		errors.Is(err, llmprovider.ErrAllProvidersFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
