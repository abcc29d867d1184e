package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// FieldConfig describes one numeric input field: its value range,
	// default expression and the units a committed value may carry.
	FieldConfig struct {
		Default string   `yaml:"default" validate:"required"`
		Min     float64  `yaml:"min"`
		Max     float64  `yaml:"max" validate:"gtefield=Min"`
		Units   []string `yaml:"units" validate:"required,dive,required"`
	}

	FieldsConfig struct {
		FontSize      FieldConfig `yaml:"font_size"`
		LineHeight    FieldConfig `yaml:"line_height"`
		LetterSpacing FieldConfig `yaml:"letter_spacing"`
	}

	OutputConfig struct {
		Format    OutputFmt `yaml:"format" validate:"gte=0"`
		Precision int       `yaml:"precision" validate:"min=-1,max=12"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Fields    FieldsConfig   `yaml:"fields"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// FieldNames returns configured field names in presentation order. The
// names double as keys for command line input (NAME=EXPR) and map to CSS
// property names by replacing underscores with dashes.
func (f *FieldsConfig) FieldNames() []string {
	return []string{"font_size", "line_height", "letter_spacing"}
}

// Get returns the field configuration for a name from FieldNames.
func (f *FieldsConfig) Get(name string) (FieldConfig, bool) {
	switch name {
	case "font_size":
		return f.FontSize, true
	case "line_height":
		return f.LineHeight, true
	case "letter_spacing":
		return f.LetterSpacing, true
	}
	return FieldConfig{}, false
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a
// byte slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
