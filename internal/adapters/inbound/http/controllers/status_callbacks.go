package controllers

import (
	"strings"

	portsout "alphtip/internal/application/ports/out"
	valueobjects "alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"
)

// StatusCallbacks turns an optional status_callback_url into a sink.
type StatusCallbacks struct {
	factory      portsout.StatusSinkFactory
	allowedHosts []string
}

func NewStatusCallbacks(factory portsout.StatusSinkFactory, allowedHosts []string) StatusCallbacks {
	return StatusCallbacks{factory: factory, allowedHosts: allowedHosts}
}

func (s StatusCallbacks) sinkFor(raw string) (portsout.StatusSink, *apperrors.AppError) {
	if strings.TrimSpace(raw) == "" {
		return s.factory.ForCallback(""), nil
	}
	callbackURL, appErr := valueobjects.ParseCallbackURL(raw, s.allowedHosts)
	if appErr != nil {
		return nil, appErr
	}
	return s.factory.ForCallback(callbackURL.String()), nil
}
