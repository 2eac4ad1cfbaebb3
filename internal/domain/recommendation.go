package domain

// RecommendationRequest is the body sent to the recommendation endpoint.
type RecommendationRequest struct {
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	Temperature float64
	Humidity    float64
	PH          float64
	Rainfall    float64
}

// RecommendationResult is produced by the service and only read for display.
// Confidence is a percentage in [0, 100].
type RecommendationResult struct {
	RecommendedCrop string
	Confidence      float64
	Message         string
}

// RecommendationField enumerates the recommendation form inputs.
type RecommendationField int

const (
	RecNitrogen RecommendationField = iota
	RecPhosphorus
	RecPotassium
	RecPH
	RecTemperature
	RecHumidity
	RecRainfall
)

var recommendationFields = []RecommendationField{
	RecNitrogen,
	RecPhosphorus,
	RecPotassium,
	RecPH,
	RecTemperature,
	RecHumidity,
	RecRainfall,
}

// RecommendationFields returns the fields in display order.
func RecommendationFields() []RecommendationField {
	out := make([]RecommendationField, len(recommendationFields))
	copy(out, recommendationFields)
	return out
}

func (f RecommendationField) Key() string {
	switch f {
	case RecNitrogen:
		return "nitrogen"
	case RecPhosphorus:
		return "phosphorus"
	case RecPotassium:
		return "potassium"
	case RecPH:
		return "ph"
	case RecTemperature:
		return "temperature"
	case RecHumidity:
		return "humidity"
	case RecRainfall:
		return "rainfall"
	default:
		return ""
	}
}

func (f RecommendationField) Label() string {
	switch f {
	case RecNitrogen:
		return "Nitrogen (N)"
	case RecPhosphorus:
		return "Phosphorus (P)"
	case RecPotassium:
		return "Potassium (K)"
	case RecPH:
		return "pH Level"
	case RecTemperature:
		return "Temperature (°C)"
	case RecHumidity:
		return "Humidity (%)"
	case RecRainfall:
		return "Rainfall (mm)"
	default:
		return ""
	}
}

func (f RecommendationField) Hint() string {
	switch f {
	case RecNitrogen:
		return "0-140 kg/ha"
	case RecPhosphorus:
		return "0-145 kg/ha"
	case RecPotassium:
		return "0-205 kg/ha"
	case RecPH:
		return "3.5-9.9"
	case RecTemperature:
		return "e.g., 25"
	case RecHumidity:
		return "0-100%"
	case RecRainfall:
		return "e.g., 200"
	default:
		return ""
	}
}

func (f RecommendationField) Constraint() Constraint {
	switch f {
	case RecTemperature:
		return Constraint{Required: true, Numeric: true}
	case RecHumidity:
		return Constraint{Required: true, Numeric: true, Min: bound(0), Max: bound(100)}
	case RecPH:
		return Constraint{Required: true, Numeric: true, Min: bound(0), Max: bound(14)}
	default:
		return Constraint{Required: true, Numeric: true, Min: bound(0)}
	}
}

// RecommendationForm holds the raw text of the seven numeric inputs.
type RecommendationForm struct {
	Nitrogen    string
	Phosphorus  string
	Potassium   string
	Temperature string
	Humidity    string
	PH          string
	Rainfall    string
}

func (f *RecommendationForm) Set(field RecommendationField, value string) {
	switch field {
	case RecNitrogen:
		f.Nitrogen = value
	case RecPhosphorus:
		f.Phosphorus = value
	case RecPotassium:
		f.Potassium = value
	case RecPH:
		f.PH = value
	case RecTemperature:
		f.Temperature = value
	case RecHumidity:
		f.Humidity = value
	case RecRainfall:
		f.Rainfall = value
	}
}

func (f RecommendationForm) Get(field RecommendationField) string {
	switch field {
	case RecNitrogen:
		return f.Nitrogen
	case RecPhosphorus:
		return f.Phosphorus
	case RecPotassium:
		return f.Potassium
	case RecPH:
		return f.PH
	case RecTemperature:
		return f.Temperature
	case RecHumidity:
		return f.Humidity
	case RecRainfall:
		return f.Rainfall
	default:
		return ""
	}
}

// Request parses every field; unparseable text becomes NaN.
func (f RecommendationForm) Request() RecommendationRequest {
	return RecommendationRequest{
		Nitrogen:    ParseNumber(f.Nitrogen),
		Phosphorus:  ParseNumber(f.Phosphorus),
		Potassium:   ParseNumber(f.Potassium),
		Temperature: ParseNumber(f.Temperature),
		Humidity:    ParseNumber(f.Humidity),
		PH:          ParseNumber(f.PH),
		Rainfall:    ParseNumber(f.Rainfall),
	}
}
