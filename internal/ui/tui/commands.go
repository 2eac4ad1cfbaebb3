package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

func cmdSubmitYield(ctx context.Context, uc *usecase.SubmitYield, tok domain.Token, form domain.YieldForm) tea.Cmd {
	return func() tea.Msg {
		return yieldSettledMsg{tok: tok, out: uc.Execute(ctx, form)}
	}
}

func cmdSubmitRecommendation(ctx context.Context, uc *usecase.SubmitRecommendation, tok domain.Token, form domain.RecommendationForm) tea.Cmd {
	return func() tea.Msg {
		return recommendationSettledMsg{tok: tok, out: uc.Execute(ctx, form)}
	}
}

func cmdLoadOptions(ctx context.Context, uc *usecase.LoadOptions) tea.Cmd {
	return func() tea.Msg {
		opts, err := uc.Execute(ctx)
		return optionsLoadedMsg{opts: opts, err: err}
	}
}
