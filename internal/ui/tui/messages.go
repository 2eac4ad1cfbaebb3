package tui

import "github.com/Amruth-empire/crop-prediction/internal/domain"

type yieldSettledMsg struct {
	tok domain.Token
	out domain.Outcome[domain.YieldResult]
}

type recommendationSettledMsg struct {
	tok domain.Token
	out domain.Outcome[domain.RecommendationResult]
}

type optionsLoadedMsg struct {
	opts domain.Options
	err  error
}
