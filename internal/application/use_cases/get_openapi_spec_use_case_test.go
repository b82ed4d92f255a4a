//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"alphtip/internal/application/dto"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSpec struct {
	content []byte
}

func (s staticSpec) Read(context.Context) ([]byte, string, *apperrors.AppError) {
	return s.content, "application/yaml", nil
}

func TestGetOpenAPISpecReturnsDocument(t *testing.T) {
	output, appErr := NewGetOpenAPISpecUseCase(staticSpec{content: []byte("openapi: 3.0.3")}).
		Execute(context.Background(), dto.GetOpenAPISpecQuery{})

	require.Nil(t, appErr)
	assert.Equal(t, "application/yaml", output.ContentType)
	assert.Equal(t, "openapi: 3.0.3", string(output.Content))
}

func TestGetOpenAPISpecRejectsEmptyDocument(t *testing.T) {
	_, appErr := NewGetOpenAPISpecUseCase(staticSpec{content: []byte("  \n")}).
		Execute(context.Background(), dto.GetOpenAPISpecQuery{})

	require.NotNil(t, appErr)
	assert.Equal(t, "openapi_spec_empty", appErr.Code)
}
