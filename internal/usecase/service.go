package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

type LoadOptions struct {
	provider ports.OptionsProvider
	logger   *slog.Logger
}

func NewLoadOptions(p ports.OptionsProvider, opts ...Option) *LoadOptions {
	o := buildOptions(opts)
	return &LoadOptions{provider: p, logger: o.logger}
}

// Execute fetches the suggestion lists. Callers treat a failure as "no
// suggestions"; forms work without them.
func (uc *LoadOptions) Execute(ctx context.Context) (domain.Options, error) {
	opts, err := uc.provider.Options(ctx)
	if err != nil {
		uc.logger.Warn("options.load_failed", "err", err)
		return domain.Options{}, err
	}
	uc.logger.Debug("options.loaded",
		"states", len(opts.States),
		"districts", len(opts.Districts),
		"crops", len(opts.Crops),
	)
	return opts, nil
}

// ServiceStatus is the combined view of the service's health and options.
// Each half carries its own error.
type ServiceStatus struct {
	Health     domain.Health
	HealthErr  error
	Options    domain.Options
	OptionsErr error
}

// Reachable reports whether at least one endpoint answered.
func (s ServiceStatus) Reachable() bool {
	return s.HealthErr == nil || s.OptionsErr == nil
}

type CheckService struct {
	health  ports.HealthChecker
	options ports.OptionsProvider
	logger  *slog.Logger
}

func NewCheckService(h ports.HealthChecker, o ports.OptionsProvider, opts ...Option) *CheckService {
	bo := buildOptions(opts)
	return &CheckService{health: h, options: o, logger: bo.logger}
}

// Execute queries health and options concurrently. It only returns an error
// when ctx ends before both calls finish.
func (uc *CheckService) Execute(ctx context.Context) (ServiceStatus, error) {
	var st ServiceStatus
	var g errgroup.Group

	g.Go(func() error {
		st.Health, st.HealthErr = uc.health.Health(ctx)
		return nil
	})
	g.Go(func() error {
		st.Options, st.OptionsErr = uc.options.Options(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return st, err
	}

	uc.logger.Info("status.checked",
		"health_ok", st.HealthErr == nil && st.Health.Healthy(),
		"options_ok", st.OptionsErr == nil,
	)
	return st, nil
}
