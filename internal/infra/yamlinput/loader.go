package yamlinput

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

// Loader reads form presets from YAML files.
type Loader struct {
	rootDir    string
	presetsDir string
}

type Option func(*Loader)

func WithPresetsDir(dir string) Option {
	return func(l *Loader) { l.presetsDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:    root,
		presetsDir: "presets",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.PresetLoader = (*Loader)(nil)

// LoadPreset accepts either a preset name (e.g., "example") or a path to a YAML file.
func (l *Loader) LoadPreset(nameOrPath string) (domain.Preset, error) {
	in := strings.TrimSpace(nameOrPath)
	if in == "" {
		return domain.Preset{}, &domain.OpError{
			Op:   "yamlinput.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("preset is empty: %w", domain.ErrInvalidInput),
		}
	}

	path := in
	if !hasYAMLExt(in) && !strings.ContainsRune(in, filepath.Separator) && !strings.Contains(in, "/") {
		path = filepath.Join(l.rootDir, l.presetsDir, in+".yaml")
	}
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Preset{}, &domain.OpError{
			Op:   "yamlinput.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlPreset
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.Preset{}, &domain.OpError{
			Op:   "yamlinput.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapPreset(path, y)
}

type yamlPreset struct {
	Name           string            `yaml:"name"`
	Yield          map[string]scalar `yaml:"yield"`
	Recommendation map[string]scalar `yaml:"recommendation"`
}

// scalar keeps the raw text of a YAML scalar so numbers and strings are both
// accepted as form input.
type scalar string

func (s *scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", n.Line)
	}
	if n.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = scalar(n.Value)
	return nil
}

func mapPreset(path string, y yamlPreset) (domain.Preset, error) {
	p := domain.Preset{Name: strings.TrimSpace(y.Name)}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if y.Yield != nil {
		var form domain.YieldForm
		fields := map[string]domain.YieldField{}
		for _, f := range domain.YieldFields() {
			fields[f.Key()] = f
		}
		for _, k := range sortedKeys(y.Yield) {
			f, ok := fields[k]
			if !ok {
				return domain.Preset{}, invalidField(path, "yield."+k, "unknown field")
			}
			form.Set(f, string(y.Yield[k]))
		}
		p.Yield = &form
	}

	if y.Recommendation != nil {
		var form domain.RecommendationForm
		fields := map[string]domain.RecommendationField{}
		for _, f := range domain.RecommendationFields() {
			fields[f.Key()] = f
		}
		for _, k := range sortedKeys(y.Recommendation) {
			f, ok := fields[k]
			if !ok {
				return domain.Preset{}, invalidField(path, "recommendation."+k, "unknown field")
			}
			form.Set(f, string(y.Recommendation[k]))
		}
		p.Recommendation = &form
	}

	if p.Yield == nil && p.Recommendation == nil {
		return domain.Preset{}, invalidField(path, "yield", "preset has neither yield nor recommendation values")
	}

	return p, nil
}

func sortedKeys(m map[string]scalar) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlinput.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
