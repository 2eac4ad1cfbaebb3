package domain

// WorkspaceSpec describes where `cropcast init` writes its files.
type WorkspaceSpec struct {
	Root string
}

// Preset carries raw form values used to pre-fill one or both forms.
type Preset struct {
	Name           string
	Yield          *YieldForm
	Recommendation *RecommendationForm
}
