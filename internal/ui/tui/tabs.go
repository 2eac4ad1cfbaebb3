package tui

import (
	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

type tab int

const (
	tabYield tab = iota
	tabRecommendation
)

func (t tab) title() string {
	if t == tabRecommendation {
		return "🌱 Crop Recommendation"
	}
	return "📊 Yield Prediction"
}

// form names the tab's form in messages.
func (t tab) form() string {
	if t == tabRecommendation {
		return "recommendation form"
	}
	return "yield form"
}

type yieldTab struct {
	panel formPanel
	sub   domain.Submission[domain.YieldResult]
}

func newYieldTab() yieldTab {
	fields := domain.YieldFields()
	specs := make([]fieldSpec, len(fields))
	for i, f := range fields {
		kind := fieldText
		switch f {
		case domain.YieldSeason:
			kind = fieldChoice
		case domain.YieldArea:
			kind = fieldNumber
		}
		specs[i] = fieldSpec{key: f.Key(), label: f.Label(), hint: f.Hint(), kind: kind}
	}
	return yieldTab{panel: newFormPanel(specs)}
}

func (t yieldTab) form() domain.YieldForm {
	var f domain.YieldForm
	for i, fld := range domain.YieldFields() {
		f.Set(fld, t.panel.value(i))
	}
	return f
}

func (t *yieldTab) fill(f domain.YieldForm) {
	for i, fld := range domain.YieldFields() {
		v := f.Get(fld)
		if fld == domain.YieldSeason {
			if s, err := domain.ParseSeason(v); err == nil {
				v = string(s)
			}
		}
		t.panel.setValue(i, v)
	}
}

// begin validates the form and starts a submission. ok is false when the
// submit is ignored (busy) or blocked by input constraints.
func (t *yieldTab) begin() (domain.Token, domain.YieldForm, bool) {
	if t.sub.Busy() {
		return 0, domain.YieldForm{}, false
	}
	form := t.form()
	issues := domain.CheckYield(form)
	t.panel.setIssues(issues)
	if len(issues) > 0 {
		return 0, form, false
	}
	tok, ok := t.sub.Begin()
	return tok, form, ok
}

type recommendationTab struct {
	panel formPanel
	sub   domain.Submission[domain.RecommendationResult]
}

func newRecommendationTab() recommendationTab {
	fields := domain.RecommendationFields()
	specs := make([]fieldSpec, len(fields))
	for i, f := range fields {
		specs[i] = fieldSpec{key: f.Key(), label: f.Label(), hint: f.Hint(), kind: fieldNumber}
	}
	return recommendationTab{panel: newFormPanel(specs)}
}

func (t recommendationTab) form() domain.RecommendationForm {
	var f domain.RecommendationForm
	for i, fld := range domain.RecommendationFields() {
		f.Set(fld, t.panel.value(i))
	}
	return f
}

func (t *recommendationTab) fill(f domain.RecommendationForm) {
	for i, fld := range domain.RecommendationFields() {
		t.panel.setValue(i, f.Get(fld))
	}
}

func (t *recommendationTab) begin() (domain.Token, domain.RecommendationForm, bool) {
	if t.sub.Busy() {
		return 0, domain.RecommendationForm{}, false
	}
	form := t.form()
	issues := domain.CheckRecommendation(form)
	t.panel.setIssues(issues)
	if len(issues) > 0 {
		return 0, form, false
	}
	tok, ok := t.sub.Begin()
	return tok, form, ok
}
