package out

import (
	"context"

	apperrors "alphtip/internal/shared_kernel/errors"
)

// ReadinessProbe reports whether a dependency can currently serve requests.
type ReadinessProbe interface {
	CheckReadiness(ctx context.Context) *apperrors.AppError
}
