// Package scenario loads declarative timing scenarios and replays them
// against a profiler, producing renderable reports.
package scenario

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Step is one timed region of a scenario. Duration is the time the step
// spends in itself, before its nested steps run.
type Step struct {
	Label    string        `koanf:"label"`
	Duration time.Duration `koanf:"duration"`
	Detail   string        `koanf:"detail"`
	Steps    []Step        `koanf:"steps"`
}

// Scenario is a named tree of steps.
type Scenario struct {
	Label string `koanf:"label"`
	Steps []Step `koanf:"steps"`
}

// Load reads and validates a scenario from a YAML file. Step durations
// use Go syntax ("15ms", "1.5s").
func Load(path string) (*Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var s Scenario
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks labels and durations recursively.
func (s *Scenario) Validate() error {
	if s.Label == "" {
		return errors.New("scenario label is required")
	}
	return validateSteps(s.Steps, s.Label)
}

func validateSteps(steps []Step, path string) error {
	for i := range steps {
		st := &steps[i]
		if st.Label == "" {
			return fmt.Errorf("step %d under %q has no label", i+1, path)
		}
		if st.Duration < 0 {
			return fmt.Errorf("step %q has a negative duration", st.Label)
		}
		if err := validateSteps(st.Steps, path+"."+st.Label); err != nil {
			return err
		}
	}
	return nil
}

// MarshalYAML renders durations in their human form ("15ms") so
// scaffolded scenarios stay readable and re-loadable.
func (s Step) MarshalYAML() (any, error) {
	type stepDoc struct {
		Label    string `yaml:"label"`
		Duration string `yaml:"duration,omitempty"`
		Detail   string `yaml:"detail,omitempty"`
		Steps    []Step `yaml:"steps,omitempty"`
	}
	doc := stepDoc{Label: s.Label, Detail: s.Detail, Steps: s.Steps}
	if s.Duration > 0 {
		doc.Duration = s.Duration.String()
	}
	return doc, nil
}

// MarshalYAML keeps scenario field order stable in scaffolded files.
func (s Scenario) MarshalYAML() (any, error) {
	type scenarioDoc struct {
		Label string `yaml:"label"`
		Steps []Step `yaml:"steps"`
	}
	return scenarioDoc{Label: s.Label, Steps: s.Steps}, nil
}
