package predictclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Amruth-empire/crop-prediction/internal/buildinfo"
	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/infra/httpclient"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

var (
	_ ports.YieldPredictor  = (*Client)(nil)
	_ ports.CropRecommender = (*Client)(nil)
	_ ports.OptionsProvider = (*Client)(nil)
	_ ports.HealthChecker   = (*Client)(nil)
)

// Client calls the crop prediction service over HTTP.
type Client struct {
	endpoints Endpoints
	exec      *httpclient.Executor
	logger    *slog.Logger
	requestID func() string
}

// Option configures a Client.
type Option func(*Client)

// WithExecutor sets the HTTP executor.
func WithExecutor(exec *httpclient.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestID overrides the X-Request-ID generator.
func WithRequestID(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}

// New builds a Client for the given endpoints.
func New(endpoints Endpoints, opts ...Option) *Client {
	c := &Client{
		endpoints: endpoints,
		exec:      httpclient.NewExecutor(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		requestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig resolves endpoints and transport settings from cfg.
func FromConfig(api domain.APIConfig, opts ...Option) (*Client, error) {
	ep, err := ResolveEndpoints(api)
	if err != nil {
		return nil, err
	}

	cfg := httpclient.ConfigFor(api)
	cfg.UserAgent = "cropcast/" + buildinfo.Version
	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(cfg)),
		httpclient.WithTimeout(api.Timeout),
	)

	return New(ep, append([]Option{WithExecutor(exec)}, opts...)...), nil
}

// Endpoints returns the resolved URLs.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// PredictYield posts the yield form to the yield endpoint.
func (c *Client) PredictYield(ctx context.Context, req domain.YieldRequest) (domain.YieldResult, error) {
	var out yieldResultDTO
	if err := c.call(ctx, "predict_yield", http.MethodPost, c.endpoints.Yield, toYieldDTO(req), &out); err != nil {
		return domain.YieldResult{}, err
	}
	return domain.YieldResult{
		Prediction: out.Prediction,
		Unit:       out.Unit,
		Message:    out.Message,
	}, nil
}

// RecommendCrop posts soil and climate values to the recommendation endpoint.
func (c *Client) RecommendCrop(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error) {
	var out recommendationResultDTO
	if err := c.call(ctx, "recommend_crop", http.MethodPost, c.endpoints.Recommend, toRecommendationDTO(req), &out); err != nil {
		return domain.RecommendationResult{}, err
	}
	return domain.RecommendationResult{
		RecommendedCrop: out.RecommendedCrop,
		Confidence:      out.Confidence,
		Message:         out.Message,
	}, nil
}

// Options fetches the reference lists used to suggest yield form values.
func (c *Client) Options(ctx context.Context) (domain.Options, error) {
	var out optionsDTO
	if err := c.call(ctx, "options", http.MethodGet, c.endpoints.Options, nil, &out); err != nil {
		return domain.Options{}, err
	}
	return domain.Options{
		States:    out.States,
		Districts: out.Districts,
		Seasons:   out.Seasons,
		Crops:     out.Crops,
	}, nil
}

// Health fetches the service status and loaded models.
func (c *Client) Health(ctx context.Context) (domain.Health, error) {
	var out healthDTO
	if err := c.call(ctx, "health", http.MethodGet, c.endpoints.Health, nil, &out); err != nil {
		return domain.Health{}, err
	}
	return domain.Health{
		Status:       out.Status,
		ModelsLoaded: out.ModelsLoaded,
	}, nil
}

func (c *Client) call(ctx context.Context, op, method, url string, payload, out any) error {
	id := c.requestID()
	req, err := httpclient.BuildJSONRequest(ctx, method, url, payload, map[string]string{
		"Accept":       "application/json",
		"X-Request-ID": id,
	})
	if err != nil {
		return err
	}

	c.logger.Debug("predictclient.request", "op", op, "method", method, "url", url, "request_id", id)

	res, err := c.exec.Do(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.logger.Debug("predictclient.canceled", "op", op, "request_id", id)
		} else {
			c.logger.Warn("predictclient.transport_failed", "op", op, "request_id", id, "err", err)
		}
		return err
	}

	c.logger.Info("predictclient.response",
		"op", op,
		"request_id", id,
		"status", res.Status,
		"latency_ms", res.Duration.Milliseconds(),
		"truncated", res.Truncated,
	)

	if !res.OK() {
		return &domain.ServiceError{
			Status: res.Status,
			Detail: extractDetail(res.BodyBytes),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.BodyBytes, out); err != nil {
		return &domain.DecodeError{Err: err}
	}
	return nil
}
