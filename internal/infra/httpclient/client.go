package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

// Config holds the transport settings for calls to the prediction service.
type Config struct {
	// Timeout bounds one whole call, body included. Zero leaves it to the
	// caller's context.
	Timeout time.Duration

	// UserAgent is set on requests that carry none.
	UserAgent string

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	IdleConnTimeout time.Duration

	// A single service host is expected, so the idle pool is per host.
	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		UserAgent:           "cropcast",
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 4,
	}
}

// ConfigFor applies the api section of cropcast.yaml to the defaults.
func ConfigFor(api domain.APIConfig) Config {
	cfg := DefaultConfig()
	cfg.Timeout = api.Timeout
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConnsPerHost,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout: cfg.TLSHandshake,
	}

	var rt http.RoundTripper = tr
	if cfg.UserAgent != "" {
		rt = userAgentTransport{next: tr, value: cfg.UserAgent}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}
}

type userAgentTransport struct {
	next  http.RoundTripper
	value string
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.value)
	return t.next.RoundTrip(r)
}
