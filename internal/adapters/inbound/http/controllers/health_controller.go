package controllers

import (
	"net/http"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"

	"go.uber.org/zap"
)

type HealthController struct {
	useCase portsin.GetHealthUseCase
	logger  *zap.Logger
}

func NewHealthController(useCase portsin.GetHealthUseCase, logger *zap.Logger) *HealthController {
	return &HealthController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *HealthController) GetHealth(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.useCase.Execute(r.Context(), dto.GetHealthCommand{})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}

	status := http.StatusOK
	if output.Status != "ok" {
		c.logger.Warn("health degraded", zap.Any("checks", output.Checks))
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, output)
}
