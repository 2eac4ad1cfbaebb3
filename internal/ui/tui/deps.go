package tui

import (
	"log/slog"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

type Deps struct {
	Predictor   ports.YieldPredictor
	Recommender ports.CropRecommender
	// Options is optional; without it inputs get no suggestions.
	Options ports.OptionsProvider

	// Preset pre-fills the forms when set.
	Preset *domain.Preset
	// ServiceURL is shown in the footer.
	ServiceURL string

	Logger *slog.Logger
	Debug  bool
}
