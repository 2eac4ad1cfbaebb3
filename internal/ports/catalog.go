package ports

import (
	"context"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

// OptionsProvider lists the values the service knows about.
type OptionsProvider interface {
	Options(ctx context.Context) (domain.Options, error)
}

// HealthChecker reads the service's readiness report.
type HealthChecker interface {
	Health(ctx context.Context) (domain.Health, error)
}
