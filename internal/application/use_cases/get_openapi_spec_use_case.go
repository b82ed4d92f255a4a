package use_cases

import (
	"bytes"
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type getOpenAPISpecUseCase struct {
	readModel portsout.OpenAPISpecReadModel
}

func NewGetOpenAPISpecUseCase(readModel portsout.OpenAPISpecReadModel) portsin.GetOpenAPISpecUseCase {
	return &getOpenAPISpecUseCase{readModel: readModel}
}

func (u *getOpenAPISpecUseCase) Execute(ctx context.Context, _ dto.GetOpenAPISpecQuery) (dto.OpenAPISpecOutput, *apperrors.AppError) {
	content, contentType, appErr := u.readModel.Read(ctx)
	if appErr != nil {
		return dto.OpenAPISpecOutput{}, appErr
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return dto.OpenAPISpecOutput{}, apperrors.NewInternal(
			"openapi_spec_empty",
			"OpenAPI spec document is empty",
			nil,
		)
	}

	return dto.OpenAPISpecOutput{Content: content, ContentType: contentType}, nil
}
