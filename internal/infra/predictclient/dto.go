package predictclient

import (
	"math"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

type yieldRequestDTO struct {
	State    string   `json:"state"`
	District string   `json:"district"`
	Season   string   `json:"season"`
	Crop     string   `json:"crop"`
	Area     *float64 `json:"area"`
}

type yieldResultDTO struct {
	Prediction float64 `json:"prediction"`
	Unit       string  `json:"unit"`
	Message    string  `json:"message"`
}

type recommendationRequestDTO struct {
	Nitrogen    *float64 `json:"nitrogen"`
	Phosphorus  *float64 `json:"phosphorus"`
	Potassium   *float64 `json:"potassium"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PH          *float64 `json:"ph"`
	Rainfall    *float64 `json:"rainfall"`
}

type recommendationResultDTO struct {
	RecommendedCrop string  `json:"recommended_crop"`
	Confidence      float64 `json:"confidence"`
	Message         string  `json:"message"`
}

type optionsDTO struct {
	States    []string `json:"states"`
	Districts []string `json:"districts"`
	Seasons   []string `json:"seasons"`
	Crops     []string `json:"crops"`
}

type healthDTO struct {
	Status       string          `json:"status"`
	ModelsLoaded map[string]bool `json:"models_loaded"`
}

// number maps non-finite values to JSON null, which is what a browser sends
// for NaN; the service then rejects the request with a detail.
func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func toYieldDTO(r domain.YieldRequest) yieldRequestDTO {
	return yieldRequestDTO{
		State:    r.State,
		District: r.District,
		Season:   string(r.Season),
		Crop:     r.Crop,
		Area:     number(r.Area),
	}
}

func toRecommendationDTO(r domain.RecommendationRequest) recommendationRequestDTO {
	return recommendationRequestDTO{
		Nitrogen:    number(r.Nitrogen),
		Phosphorus:  number(r.Phosphorus),
		Potassium:   number(r.Potassium),
		Temperature: number(r.Temperature),
		Humidity:    number(r.Humidity),
		PH:          number(r.PH),
		Rainfall:    number(r.Rainfall),
	}
}
