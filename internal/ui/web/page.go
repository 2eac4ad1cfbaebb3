package web

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

const (
	tabYield          = "yield"
	tabRecommendation = "recommendation"
)

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type fieldView struct {
	Key      string
	Label    string
	Hint     string
	Value    string
	Issue    string
	Type     string // "text", "number" or "select"
	Required bool
	Min      string
	Max      string
	List     string
	Options  []optionView
}

type yieldResultView struct {
	Prediction string
	Unit       string
	Message    string
}

type recommendationResultView struct {
	Crop       string
	Confidence string
	Message    string
}

type pageData struct {
	Tab        string
	ServiceURL string

	YieldFields []fieldView
	YieldResult *yieldResultView
	YieldError  string

	RecommendationFields []fieldView
	RecommendationResult *recommendationResultView
	RecommendationError  string

	States    []string
	Districts []string
	Crops     []string
}

func (p pageData) IsYield() bool { return p.Tab != tabRecommendation }

func yieldFieldViews(f domain.YieldForm, issues []domain.FieldIssue) []fieldView {
	byKey := issueMap(issues)
	out := make([]fieldView, 0, len(domain.YieldFields()))
	for _, fld := range domain.YieldFields() {
		c := fld.Constraint()
		v := fieldView{
			Key:      fld.Key(),
			Label:    fld.Label(),
			Hint:     fld.Hint(),
			Value:    f.Get(fld),
			Issue:    byKey[fld.Key()],
			Type:     "text",
			Required: c.Required,
		}
		switch fld {
		case domain.YieldState:
			v.List = "states"
		case domain.YieldDistrict:
			v.List = "districts"
		case domain.YieldCrop:
			v.List = "crops"
		case domain.YieldSeason:
			v.Type = "select"
			v.Options = seasonOptions(f.Get(fld))
		case domain.YieldArea:
			v.Type = "number"
			v.Min, v.Max = bounds(c)
		}
		out = append(out, v)
	}
	return out
}

func recommendationFieldViews(f domain.RecommendationForm, issues []domain.FieldIssue) []fieldView {
	byKey := issueMap(issues)
	out := make([]fieldView, 0, len(domain.RecommendationFields()))
	for _, fld := range domain.RecommendationFields() {
		c := fld.Constraint()
		v := fieldView{
			Key:      fld.Key(),
			Label:    fld.Label(),
			Hint:     fld.Hint(),
			Value:    f.Get(fld),
			Issue:    byKey[fld.Key()],
			Type:     "number",
			Required: c.Required,
		}
		v.Min, v.Max = bounds(c)
		out = append(out, v)
	}
	return out
}

func seasonOptions(selected string) []optionView {
	cur := domain.Season(selected)
	if s, err := domain.ParseSeason(selected); err == nil {
		cur = s
	}
	out := make([]optionView, 0, len(domain.Seasons()))
	for _, s := range domain.Seasons() {
		out = append(out, optionView{Value: string(s), Label: s.Label(), Selected: s == cur})
	}
	return out
}

func bounds(c domain.Constraint) (string, string) {
	var lo, hi string
	if c.Min != nil {
		lo = strconv.FormatFloat(*c.Min, 'f', -1, 64)
	}
	if c.Max != nil {
		hi = strconv.FormatFloat(*c.Max, 'f', -1, 64)
	}
	return lo, hi
}

func issueMap(issues []domain.FieldIssue) map[string]string {
	m := make(map[string]string, len(issues))
	for _, is := range issues {
		m[is.Field] = is.Message
	}
	return m
}
