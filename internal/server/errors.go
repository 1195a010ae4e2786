package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/server/middleware"
	"github.com/minsu/prompt-generator/internal/types"
)

// HTTPStatus maps a domain error kind to its HTTP status code.
func HTTPStatus(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindRulePackNotFound:
		return http.StatusNotFound
	case apperr.KindRulePackMalformed:
		return http.StatusInternalServerError
	case apperr.KindRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperr.KindTokenLimitExceeded:
		return http.StatusUnprocessableEntity
	case apperr.KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	case apperr.KindUpstreamRateLimit:
		return http.StatusServiceUnavailable
	case apperr.KindUpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes the structured error payload. Internal detail
// (wrapped causes) is only exposed in development mode; the structured
// Details map is considered user-safe and always included.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.AsError(err)
	requestID := middleware.GetRequestID(r.Context())

	if appErr.Kind == apperr.KindInternal {
		s.logger.Error("internal error",
			zap.String("request_id", requestID),
			zap.Error(err))
	}

	body := types.ErrorBody{
		Code:      string(appErr.Kind),
		Message:   appErr.Message,
		Details:   appErr.Details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
	if s.development {
		if cause := appErr.Unwrap(); cause != nil {
			if body.Details == nil {
				body.Details = make(map[string]any)
			}
			body.Details["cause"] = cause.Error()
		}
	}

	s.jsonResponse(w, HTTPStatus(appErr.Kind), types.ErrorResponse{Error: body})
}
