package domain

import (
	"math"
	"strings"
)

// Constraint describes the input rules of a single form field, the same set a
// browser enforces for required/number/min/max inputs.
type Constraint struct {
	Required bool
	Numeric  bool
	Min      *float64
	Max      *float64
	// OneOf restricts the value to a fixed list (select inputs).
	OneOf []string
}

// FieldIssue reports why a field blocks submission.
type FieldIssue struct {
	Field   string
	Label   string
	Message string
}

const (
	msgRequired = "Please fill out this field."
	msgSelect   = "Please select an item in the list."
	msgNumber   = "Please enter a number."
)

func bound(v float64) *float64 { return &v }

// Check returns the first violated rule as a message, or "" when raw passes.
func (c Constraint) Check(raw string) string {
	empty := raw == ""
	if c.Numeric {
		// Blank text in a number input counts as no value.
		empty = strings.TrimSpace(raw) == ""
	}
	if empty {
		if !c.Required {
			return ""
		}
		if len(c.OneOf) > 0 {
			return msgSelect
		}
		return msgRequired
	}

	if len(c.OneOf) > 0 {
		for _, o := range c.OneOf {
			if o == raw {
				return ""
			}
		}
		return msgSelect
	}

	if !c.Numeric {
		return ""
	}

	v := ParseNumber(raw)
	if math.IsNaN(v) {
		return msgNumber
	}
	if c.Min != nil && v < *c.Min {
		return "Value must be greater than or equal to " + formatBound(*c.Min) + "."
	}
	if c.Max != nil && v > *c.Max {
		return "Value must be less than or equal to " + formatBound(*c.Max) + "."
	}
	return ""
}

// CheckYield applies the yield form constraints in field order.
func CheckYield(f YieldForm) []FieldIssue {
	var out []FieldIssue
	for _, fld := range YieldFields() {
		if msg := fld.Constraint().Check(f.Get(fld)); msg != "" {
			out = append(out, FieldIssue{Field: fld.Key(), Label: fld.Label(), Message: msg})
		}
	}
	return out
}

// CheckRecommendation applies the recommendation form constraints in field order.
func CheckRecommendation(f RecommendationForm) []FieldIssue {
	var out []FieldIssue
	for _, fld := range RecommendationFields() {
		if msg := fld.Constraint().Check(f.Get(fld)); msg != "" {
			out = append(out, FieldIssue{Field: fld.Key(), Label: fld.Label(), Message: msg})
		}
	}
	return out
}
