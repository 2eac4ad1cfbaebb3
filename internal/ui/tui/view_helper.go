package tui

import (
	"strings"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

const (
	appTitle    = "🌾 Crop Prediction System"
	appSubtitle = "AI-Powered Crop Yield Prediction & Recommendation for Indian Agriculture"

	yieldHeading          = "🌾 Crop Yield Prediction"
	yieldButton           = "📊 Predict Yield"
	yieldBusy             = "Predicting..."
	recommendationHeading = "🌱 Crop Recommendation"
	recommendationButton  = "🌾 Get Recommendation"
	recommendationBusy    = "Processing..."
)

// failureInset is the horizontal space taken by the outer padding, the card
// border and padding, and the error box border.
const failureInset = 12

func renderYieldResult(th Theme, r domain.YieldResult) string {
	var b strings.Builder
	b.WriteString(th.Title.Render("✅ Prediction Result"))
	b.WriteString("\n\n")
	b.WriteString(th.Value.Render(domain.FormatPrediction(r.Prediction)))
	if r.Unit != "" {
		b.WriteString(" ")
		b.WriteString(r.Unit)
	}
	if r.Message != "" {
		b.WriteString("\n")
		b.WriteString(r.Message)
	}
	return th.Result.Render(b.String())
}

func renderRecommendationResult(th Theme, r domain.RecommendationResult) string {
	var b strings.Builder
	b.WriteString(th.Title.Render("✅ Recommended Crop"))
	b.WriteString("\n\n")
	b.WriteString(th.Value.Render(r.RecommendedCrop))
	b.WriteString("\nConfidence: ")
	b.WriteString(th.Title.Render(domain.FormatConfidence(r.Confidence)))
	if r.Message != "" {
		b.WriteString("\n")
		b.WriteString(r.Message)
	}
	return th.Result.Render(b.String())
}

// renderFailure shows msg in full, wrapped to fit inside the card.
func renderFailure(th Theme, msg string, width int) string {
	st := th.Error
	if width > failureInset+10 {
		st = st.Width(width - failureInset)
	}
	return st.Render("❌ Error: " + msg)
}
