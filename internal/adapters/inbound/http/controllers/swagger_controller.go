package controllers

import (
	"net/http"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

const openAPISpecRoute = "/swagger/openapi.yaml"

type SwaggerController struct {
	useCase  portsin.GetOpenAPISpecUseCase
	logger   *zap.Logger
	uiHandle http.Handler
}

func NewSwaggerController(useCase portsin.GetOpenAPISpecUseCase, logger *zap.Logger) *SwaggerController {
	return &SwaggerController{
		useCase: useCase,
		logger:  logger,
		uiHandle: httpSwagger.Handler(
			httpSwagger.URL(openAPISpecRoute),
			httpSwagger.DocExpansion("list"),
		),
	}
}

func (c *SwaggerController) RedirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/swagger/index.html", http.StatusTemporaryRedirect)
}

func (c *SwaggerController) ServeUI(w http.ResponseWriter, r *http.Request) {
	c.uiHandle.ServeHTTP(w, r)
}

func (c *SwaggerController) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.useCase.Execute(r.Context(), dto.GetOpenAPISpecQuery{})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}

	w.Header().Set("Content-Type", output.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(output.Content); err != nil {
		c.logger.Warn("openapi spec write failed", zap.Error(err))
	}
}
