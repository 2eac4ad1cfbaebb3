package ports

import "github.com/Amruth-empire/crop-prediction/internal/domain"

// PresetLoader reads raw form values from a source (e.g., a YAML file).
type PresetLoader interface {
	LoadPreset(path string) (domain.Preset, error)
}
