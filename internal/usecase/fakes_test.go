package usecase

import (
	"context"
	"sync"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

type fakePredictor struct {
	mu    sync.Mutex
	got   []domain.YieldRequest
	res   domain.YieldResult
	err   error
	block bool
	panic bool
}

func (f *fakePredictor) PredictYield(ctx context.Context, req domain.YieldRequest) (domain.YieldResult, error) {
	f.mu.Lock()
	f.got = append(f.got, req)
	f.mu.Unlock()

	if f.panic {
		panic("boom")
	}
	if f.block {
		<-ctx.Done()
		return domain.YieldResult{}, ctx.Err()
	}
	return f.res, f.err
}

type fakeRecommender struct {
	got domain.RecommendationRequest
	res domain.RecommendationResult
	err error
}

func (f *fakeRecommender) RecommendCrop(_ context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error) {
	f.got = req
	return f.res, f.err
}

type fakeCatalog struct {
	health    domain.Health
	healthErr error
	opts      domain.Options
	optsErr   error
}

func (f fakeCatalog) Health(context.Context) (domain.Health, error) {
	return f.health, f.healthErr
}

func (f fakeCatalog) Options(context.Context) (domain.Options, error) {
	return f.opts, f.optsErr
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	calls int
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.calls++
	f.spec = spec
	f.force = force
	return f.err
}

var (
	_ ports.YieldPredictor       = (*fakePredictor)(nil)
	_ ports.CropRecommender      = (*fakeRecommender)(nil)
	_ ports.HealthChecker        = fakeCatalog{}
	_ ports.OptionsProvider      = fakeCatalog{}
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)
