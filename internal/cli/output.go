package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

type yieldJSON struct {
	OK         bool     `json:"ok"`
	Prediction *float64 `json:"prediction,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	Message    string   `json:"message,omitempty"`
	Error      string   `json:"error,omitempty"`
	Kind       string   `json:"kind,omitempty"`
}

type recommendationJSON struct {
	OK              bool     `json:"ok"`
	RecommendedCrop string   `json:"recommended_crop,omitempty"`
	Confidence      *float64 `json:"confidence,omitempty"`
	Message         string   `json:"message,omitempty"`
	Error           string   `json:"error,omitempty"`
	Kind            string   `json:"kind,omitempty"`
}

type optionsJSON struct {
	States    []string `json:"states"`
	Districts []string `json:"districts"`
	Seasons   []string `json:"seasons"`
	Crops     []string `json:"crops"`
}

type statusJSON struct {
	Service      string          `json:"service"`
	Healthy      bool            `json:"healthy"`
	Status       string          `json:"status,omitempty"`
	ModelsLoaded map[string]bool `json:"models_loaded,omitempty"`
	HealthError  string          `json:"health_error,omitempty"`
	Options      *optionsJSON    `json:"options,omitempty"`
	OptionsError string          `json:"options_error,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYield(w io.Writer, out domain.Outcome[domain.YieldResult], format string) error {
	if format == "json" {
		if r, ok := out.Value(); ok {
			p := r.Prediction
			return writeJSON(w, yieldJSON{OK: true, Prediction: &p, Unit: r.Unit, Message: r.Message})
		}
		f, _ := out.Failure()
		return writeJSON(w, yieldJSON{Error: f.Message, Kind: string(f.Kind)})
	}

	if r, ok := out.Value(); ok {
		fmt.Fprintln(w, "✅ Prediction Result")
		line := domain.FormatPrediction(r.Prediction)
		if r.Unit != "" {
			line += " " + r.Unit
		}
		fmt.Fprintln(w, line)
		if r.Message != "" {
			fmt.Fprintln(w, r.Message)
		}
		return nil
	}
	f, _ := out.Failure()
	fmt.Fprintf(w, "❌ Error: %s\n", f.Message)
	return nil
}

func printRecommendation(w io.Writer, out domain.Outcome[domain.RecommendationResult], format string) error {
	if format == "json" {
		if r, ok := out.Value(); ok {
			c := r.Confidence
			return writeJSON(w, recommendationJSON{OK: true, RecommendedCrop: r.RecommendedCrop, Confidence: &c, Message: r.Message})
		}
		f, _ := out.Failure()
		return writeJSON(w, recommendationJSON{Error: f.Message, Kind: string(f.Kind)})
	}

	if r, ok := out.Value(); ok {
		fmt.Fprintln(w, "✅ Recommended Crop")
		fmt.Fprintln(w, r.RecommendedCrop)
		fmt.Fprintf(w, "Confidence: %s\n", domain.FormatConfidence(r.Confidence))
		if r.Message != "" {
			fmt.Fprintln(w, r.Message)
		}
		return nil
	}
	f, _ := out.Failure()
	fmt.Fprintf(w, "❌ Error: %s\n", f.Message)
	return nil
}

func printIssues(w io.Writer, issues []domain.FieldIssue) {
	for _, is := range issues {
		fmt.Fprintf(w, "- %s (--%s): %s\n", is.Label, is.Field, is.Message)
	}
}

func toOptionsJSON(o domain.Options) optionsJSON {
	return optionsJSON{
		States:    nonNil(o.States),
		Districts: nonNil(o.Districts),
		Seasons:   nonNil(o.Seasons),
		Crops:     nonNil(o.Crops),
	}
}

func printOptions(w io.Writer, o domain.Options, format string) error {
	if format == "json" {
		return writeJSON(w, toOptionsJSON(o))
	}

	section := func(name string, vals []string) {
		fmt.Fprintf(w, "%s (%d)\n", name, len(vals))
		if len(vals) == 0 {
			fmt.Fprintln(w, "  (none)")
			return
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(vals, ", "))
	}
	section("States", o.States)
	section("Districts", o.Districts)
	section("Seasons", o.Seasons)
	section("Crops", o.Crops)
	return nil
}

func printStatus(w io.Writer, service string, st usecase.ServiceStatus, format string) error {
	if format == "json" {
		out := statusJSON{Service: service}
		if st.HealthErr != nil {
			out.HealthError = st.HealthErr.Error()
		} else {
			out.Healthy = st.Health.Healthy()
			out.Status = st.Health.Status
			out.ModelsLoaded = st.Health.ModelsLoaded
		}
		if st.OptionsErr != nil {
			out.OptionsError = st.OptionsErr.Error()
		} else {
			o := toOptionsJSON(st.Options)
			out.Options = &o
		}
		return writeJSON(w, out)
	}

	fmt.Fprintf(w, "Service:  %s\n", service)
	switch {
	case st.HealthErr != nil:
		fmt.Fprintf(w, "Health:   unreachable (%s)\n", st.HealthErr)
	case st.Health.Healthy():
		fmt.Fprintf(w, "Health:   %s\n", st.Health.Status)
	default:
		fmt.Fprintf(w, "Health:   %s\n", orUnknown(st.Health.Status))
		if missing := st.Health.MissingModels(); len(missing) > 0 {
			fmt.Fprintf(w, "Missing:  %s\n", strings.Join(missing, ", "))
		}
	}
	if st.OptionsErr != nil {
		fmt.Fprintf(w, "Options:  unavailable (%s)\n", st.OptionsErr)
	} else {
		fmt.Fprintf(w, "Options:  %d states, %d districts, %d seasons, %d crops\n",
			len(st.Options.States), len(st.Options.Districts), len(st.Options.Seasons), len(st.Options.Crops))
	}
	return nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
