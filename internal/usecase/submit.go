package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

// Option configures a use case.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for submit events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type SubmitYield struct {
	predictor ports.YieldPredictor
	logger    *slog.Logger
}

func NewSubmitYield(p ports.YieldPredictor, opts ...Option) *SubmitYield {
	o := buildOptions(opts)
	return &SubmitYield{predictor: p, logger: o.logger}
}

// Execute sends the form as it stands and narrows the answer to an Outcome.
// It never returns a zero Outcome.
func (uc *SubmitYield) Execute(ctx context.Context, form domain.YieldForm) domain.Outcome[domain.YieldResult] {
	req := form.Request()
	return submit(ctx, uc.logger, "submit.yield", domain.YieldFallbackMessage,
		func(ctx context.Context) (domain.YieldResult, error) {
			return uc.predictor.PredictYield(ctx, req)
		},
		"summary", req.Summary(),
	)
}

type SubmitRecommendation struct {
	recommender ports.CropRecommender
	logger      *slog.Logger
}

func NewSubmitRecommendation(r ports.CropRecommender, opts ...Option) *SubmitRecommendation {
	o := buildOptions(opts)
	return &SubmitRecommendation{recommender: r, logger: o.logger}
}

func (uc *SubmitRecommendation) Execute(ctx context.Context, form domain.RecommendationForm) domain.Outcome[domain.RecommendationResult] {
	req := form.Request()
	return submit(ctx, uc.logger, "submit.recommendation", domain.RecommendationFallbackMessage,
		func(ctx context.Context) (domain.RecommendationResult, error) {
			return uc.recommender.RecommendCrop(ctx, req)
		},
	)
}

// submit runs call once. A panic inside call settles as a failure so the
// caller's busy state is always released.
func submit[T any](
	ctx context.Context,
	logger *slog.Logger,
	event string,
	fallback string,
	call func(context.Context) (T, error),
	attrs ...any,
) (out domain.Outcome[T]) {
	start := time.Now()
	logger.Info(event+".start", attrs...)

	defer func() {
		if r := recover(); r != nil {
			logger.Error(event+".panic", "panic", fmt.Sprint(r))
			out = domain.Failed[T](domain.Failure{
				Kind:    domain.FailureTransport,
				Message: domain.GenericFailureMessage,
			})
		}
	}()

	v, err := call(ctx)
	out = domain.Resolve(v, err, fallback)

	ms := time.Since(start).Milliseconds()
	if f, failed := out.Failure(); failed {
		if f.Kind == domain.FailureCanceled {
			logger.Debug(event+".canceled", "ms", ms)
		} else {
			logger.Warn(event+".failed", "kind", string(f.Kind), "message", f.Message, "ms", ms)
		}
		return out
	}

	logger.Info(event+".ok", "ms", ms)
	return out
}
