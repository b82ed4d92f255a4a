package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAppError(w http.ResponseWriter, appErr *apperrors.AppError) {
	status := http.StatusInternalServerError
	switch appErr.Type {
	case apperrors.TypeValidation:
		status = http.StatusBadRequest
	case apperrors.TypeNotFound:
		status = http.StatusNotFound
	case apperrors.TypeConflict:
		status = http.StatusConflict
	case apperrors.TypeRejected:
		status = http.StatusUnprocessableEntity
	case apperrors.TypeUnavailable:
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, errorResponse{
		Error: errorEnvelope{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// writeError renders classified failures as-is. Anything else is logged in full and
// answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	if appErr, ok := apperrors.As(err); ok {
		logger.Info("request failed",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.NamedError("cause", appErr.Cause),
		)
		writeAppError(w, appErr)
		return
	}

	logger.Error("request failed with unclassified error",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	writeAppError(w, apperrors.NewInternal("internal_error", "internal error", nil))
}

func decodeJSONBody(body io.Reader, payload any) *apperrors.AppError {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	decoder.UseNumber()

	if err := decoder.Decode(payload); err != nil {
		return apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}
	return nil
}

func requiredField(field, value string) *apperrors.AppError {
	if value != "" {
		return nil
	}
	return apperrors.NewValidation(
		"invalid_request",
		field+" is required",
		map[string]any{"field": field},
	)
}
