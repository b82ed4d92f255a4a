package docs

import (
	"context"
	"os"
	"sync"

	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"
)

const yamlContentType = "application/yaml; charset=utf-8"

var _ portsout.OpenAPISpecReadModel = (*FileOpenAPISpecReadModel)(nil)

// FileOpenAPISpecReadModel serves the OpenAPI document from disk. The first successful
// read is kept for the life of the process.
type FileOpenAPISpecReadModel struct {
	path string

	mu      sync.Mutex
	content []byte
}

func NewFileOpenAPISpecReadModel(path string) *FileOpenAPISpecReadModel {
	return &FileOpenAPISpecReadModel{path: path}
}

func (r *FileOpenAPISpecReadModel) Read(_ context.Context) ([]byte, string, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.content != nil {
		return r.content, yamlContentType, nil
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, "", apperrors.NewInternal(
			"openapi_spec_unreadable",
			"failed to read OpenAPI spec file",
			map[string]any{"path": r.path},
		).WithCause(err)
	}
	r.content = content
	return content, yamlContentType, nil
}
