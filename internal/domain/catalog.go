package domain

import "sort"

// Options lists the values the service was trained on. They are only used as
// input suggestions; forms accept any text.
type Options struct {
	States    []string
	Districts []string
	Seasons   []string
	Crops     []string
}

// Health is the service's own readiness report.
type Health struct {
	Status       string
	ModelsLoaded map[string]bool
}

// Healthy reports whether the service says it is healthy and every model it
// lists is loaded.
func (h Health) Healthy() bool {
	if h.Status != "healthy" {
		return false
	}
	for _, ok := range h.ModelsLoaded {
		if !ok {
			return false
		}
	}
	return true
}

// MissingModels returns the names of models reported as not loaded, sorted.
func (h Health) MissingModels() []string {
	var out []string
	for name, ok := range h.ModelsLoaded {
		if !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
