package use_cases

import (
	"context"
	"sort"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type getHealthUseCase struct {
	probes map[string]portsout.ReadinessProbe
}

// NewGetHealthUseCase reports "ok" when every named probe is ready.
func NewGetHealthUseCase(probes map[string]portsout.ReadinessProbe) portsin.GetHealthUseCase {
	return &getHealthUseCase{probes: probes}
}

func (u *getHealthUseCase) Execute(ctx context.Context, _ dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError) {
	status := valueobjects.NewHealthyStatus()
	if len(u.probes) == 0 {
		return dto.HealthOutput{Status: status.String()}, nil
	}

	names := make([]string, 0, len(u.probes))
	for name := range u.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	for _, name := range names {
		if appErr := u.probes[name].CheckReadiness(ctx); appErr != nil {
			checks[name] = appErr.Code
			status = valueobjects.HealthStatusDegraded
			continue
		}
		checks[name] = valueobjects.HealthStatusOK.String()
	}

	return dto.HealthOutput{
		Status: status.String(),
		Checks: checks,
	}, nil
}
