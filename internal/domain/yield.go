package domain

import "strings"

// YieldRequest is the body sent to the yield-prediction endpoint.
type YieldRequest struct {
	State    string
	District string
	Season   Season
	Crop     string
	Area     float64
}

// YieldResult is produced by the service and only read for display.
type YieldResult struct {
	Prediction float64
	Unit       string
	Message    string
}

// YieldField enumerates the yield form inputs.
type YieldField int

const (
	YieldState YieldField = iota
	YieldDistrict
	YieldSeason
	YieldCrop
	YieldArea
)

var yieldFields = []YieldField{YieldState, YieldDistrict, YieldSeason, YieldCrop, YieldArea}

// YieldFields returns the fields in display order.
func YieldFields() []YieldField {
	out := make([]YieldField, len(yieldFields))
	copy(out, yieldFields)
	return out
}

// Key is the JSON/flag name of the field.
func (f YieldField) Key() string {
	switch f {
	case YieldState:
		return "state"
	case YieldDistrict:
		return "district"
	case YieldSeason:
		return "season"
	case YieldCrop:
		return "crop"
	case YieldArea:
		return "area"
	default:
		return ""
	}
}

func (f YieldField) Label() string {
	switch f {
	case YieldState:
		return "State Name"
	case YieldDistrict:
		return "District Name"
	case YieldSeason:
		return "Season"
	case YieldCrop:
		return "Crop Name"
	case YieldArea:
		return "Area (in hectares)"
	default:
		return ""
	}
}

// Hint is a short example shown in empty inputs.
func (f YieldField) Hint() string {
	switch f {
	case YieldState:
		return "e.g., Punjab, Maharashtra"
	case YieldDistrict:
		return "e.g., Amritsar, Pune"
	case YieldSeason:
		return "Select Season"
	case YieldCrop:
		return "e.g., Rice, Wheat, Cotton"
	case YieldArea:
		return "e.g., 100"
	default:
		return ""
	}
}

func (f YieldField) Constraint() Constraint {
	switch f {
	case YieldSeason:
		opts := make([]string, 0, len(seasons))
		for _, s := range seasons {
			opts = append(opts, string(s))
		}
		return Constraint{Required: true, OneOf: opts}
	case YieldArea:
		return Constraint{Required: true, Numeric: true, Min: bound(0)}
	default:
		return Constraint{Required: true}
	}
}

// YieldForm holds the raw text of every yield input, area included.
type YieldForm struct {
	State    string
	District string
	Season   string
	Crop     string
	Area     string
}

// Set updates one field.
func (f *YieldForm) Set(field YieldField, value string) {
	switch field {
	case YieldState:
		f.State = value
	case YieldDistrict:
		f.District = value
	case YieldSeason:
		f.Season = value
	case YieldCrop:
		f.Crop = value
	case YieldArea:
		f.Area = value
	}
}

// Get reads one field.
func (f YieldForm) Get(field YieldField) string {
	switch field {
	case YieldState:
		return f.State
	case YieldDistrict:
		return f.District
	case YieldSeason:
		return f.Season
	case YieldCrop:
		return f.Crop
	case YieldArea:
		return f.Area
	default:
		return ""
	}
}

// Request converts the raw form into the wire request. Area is parsed without
// guarding: unparseable text becomes NaN.
func (f YieldForm) Request() YieldRequest {
	season := Season(f.Season)
	if s, err := ParseSeason(f.Season); err == nil {
		season = s
	}
	return YieldRequest{
		State:    f.State,
		District: f.District,
		Season:   season,
		Crop:     f.Crop,
		Area:     ParseNumber(f.Area),
	}
}

// Summary is a one-line description of the request, used in logs and titles.
func (r YieldRequest) Summary() string {
	parts := []string{r.Crop, r.District, r.State, string(r.Season)}
	var b strings.Builder
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" / ")
		}
		b.WriteString(p)
	}
	return b.String()
}
