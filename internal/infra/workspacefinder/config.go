package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

// Environment overrides, applied after cropcast.yaml.
const (
	EnvAPIURL       = "CROPCAST_API_URL"
	EnvRecommendURL = "CROPCAST_RECOMMEND_URL"
	EnvTimeout      = "CROPCAST_TIMEOUT"
)

// LoadConfig loads cropcast.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	api := y.Cropcast.API
	if s := strings.TrimSpace(api.BaseURL); s != "" {
		cfg.API.BaseURL = s
	}
	if s := strings.TrimSpace(api.YieldPath); s != "" {
		cfg.API.YieldPath = s
	}
	if s := strings.TrimSpace(api.RecommendURL); s != "" {
		cfg.API.RecommendURL = s
	}
	if s := strings.TrimSpace(api.Timeout); s != "" {
		d, err := parseDuration("api.timeout", s)
		if err != nil {
			return cfg, invalidConfig(path, err)
		}
		cfg.API.Timeout = d
	}

	serve := y.Cropcast.Serve
	if s := strings.TrimSpace(serve.Addr); s != "" {
		cfg.Serve.Addr = s
	}
	if serve.AllowedOrigins != nil {
		cfg.Serve.AllowedOrigins = serve.AllowedOrigins
	}
	if s := strings.TrimSpace(serve.OptionsTTL); s != "" {
		d, err := parseDuration("serve.options_ttl", s)
		if err != nil {
			return cfg, invalidConfig(path, err)
		}
		cfg.Serve.OptionsTTL = d
	}

	if y.Cropcast.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Cropcast.Logging.Debug
	}

	return cfg, nil
}

// ApplyEnv overlays environment overrides on cfg. lookup is usually os.LookupEnv.
func ApplyEnv(cfg domain.Config, lookup func(string) (string, bool)) (domain.Config, error) {
	if lookup == nil {
		return cfg, nil
	}
	if v, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		cfg.API.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvRecommendURL); ok && strings.TrimSpace(v) != "" {
		cfg.API.RecommendURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := parseDuration(EnvTimeout, strings.TrimSpace(v))
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.applyenv",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
		cfg.API.Timeout = d
	}
	return cfg, nil
}

// Resolve finds the workspace from startDir and returns its root and config.
// Without a workspace, root is startDir and the config is the defaults; the
// environment applies either way.
func Resolve(startDir string, lookup func(string) (string, bool)) (string, domain.Config, error) {
	root := startDir
	cfg := domain.DefaultConfig()

	found, err := NewFinder().FindRoot(startDir)
	switch {
	case err == nil:
		root = found
		cfg, err = LoadConfig(root)
		if err != nil {
			return root, cfg, err
		}
	case domain.IsKind(err, domain.KindNotFound):
	default:
		return root, cfg, err
	}

	cfg, err = ApplyEnv(cfg, lookup)
	return root, cfg, err
}

func parseDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("field %s: must not be negative", field)
	}
	return d, nil
}

func invalidConfig(path string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  errors.Join(err, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Cropcast struct {
		API struct {
			BaseURL      string `yaml:"base_url"`
			YieldPath    string `yaml:"yield_path"`
			RecommendURL string `yaml:"recommend_url"`
			Timeout      string `yaml:"timeout"`
		} `yaml:"api"`

		Serve struct {
			Addr           string   `yaml:"addr"`
			AllowedOrigins []string `yaml:"allowed_origins"`
			OptionsTTL     string   `yaml:"options_ttl"`
		} `yaml:"serve"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"cropcast"`
}
