package domain

import "time"

// Config represents cropcast configuration loaded from cropcast.yaml and the
// environment.
type Config struct {
	API     APIConfig
	Serve   ServeConfig
	Logging LoggingConfig
}

type APIConfig struct {
	// BaseURL hosts the yield, options and health endpoints.
	BaseURL string
	// YieldPath is joined to BaseURL.
	YieldPath string
	// RecommendURL is a full URL; it may reference {{base_url}}.
	RecommendURL string
	// Timeout bounds a whole call. Zero leaves it to the transport.
	Timeout time.Duration
}

type ServeConfig struct {
	Addr           string
	AllowedOrigins []string
	OptionsTTL     time.Duration
}

type LoggingConfig struct {
	Debug bool
}

const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultYieldPath    = "/api/predict-yield"
	DefaultRecommendURL = "http://localhost:8000/recommend-crop"
	OptionsPath         = "/api/options"
	HealthPath          = "/api/health"
	DefaultServeAddr    = ":8080"
)

// DefaultConfig provides sane defaults if cropcast.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:      DefaultBaseURL,
			YieldPath:    DefaultYieldPath,
			RecommendURL: DefaultRecommendURL,
		},
		Serve: ServeConfig{
			Addr: DefaultServeAddr,
			AllowedOrigins: []string{
				"http://localhost:8080",
				"http://127.0.0.1:8080",
			},
			OptionsTTL: 10 * time.Minute,
		},
	}
}
