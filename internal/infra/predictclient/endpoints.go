package predictclient

import (
	"errors"
	"strings"

	"github.com/Amruth-empire/crop-prediction/internal/app/template"
	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

// Endpoints are the absolute URLs the client talks to.
type Endpoints struct {
	Yield     string
	Recommend string
	Options   string
	Health    string
}

// ResolveEndpoints derives absolute URLs from the API configuration.
// RecommendURL may reference {{base_url}}.
func ResolveEndpoints(api domain.APIConfig) (Endpoints, error) {
	base := strings.TrimRight(strings.TrimSpace(api.BaseURL), "/")
	if base == "" {
		return Endpoints{}, &domain.OpError{
			Op:   "predictclient.endpoints",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("api base_url is empty"),
		}
	}

	recommend, err := template.RenderString(strings.TrimSpace(api.RecommendURL), map[string]string{
		"base_url": base,
	})
	if err != nil {
		return Endpoints{}, err
	}
	if recommend == "" {
		return Endpoints{}, &domain.OpError{
			Op:   "predictclient.endpoints",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("api recommend_url is empty"),
		}
	}

	yieldPath := api.YieldPath
	if yieldPath == "" {
		yieldPath = domain.DefaultYieldPath
	}

	return Endpoints{
		Yield:     join(base, yieldPath),
		Recommend: recommend,
		Options:   join(base, domain.OptionsPath),
		Health:    join(base, domain.HealthPath),
	}, nil
}

func join(base, path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
