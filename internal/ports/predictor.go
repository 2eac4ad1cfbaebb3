package ports

import (
	"context"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

// YieldPredictor asks the service for a yield prediction.
// A non-2xx answer is returned as *domain.ServiceError.
type YieldPredictor interface {
	PredictYield(ctx context.Context, req domain.YieldRequest) (domain.YieldResult, error)
}

// CropRecommender asks the service for a crop recommendation.
type CropRecommender interface {
	RecommendCrop(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error)
}
