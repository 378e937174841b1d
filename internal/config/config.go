package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/sietosru/internal/charset"
	"github.com/cleared-dev/sietosru/internal/sru"
)

// FileName is the config file looked up when --config is not given.
const FileName = "sietosru.yaml"

// Config represents the top-level sietosru.yaml configuration.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Forms   FormsConfig   `yaml:"forms"`
}

// CompanyConfig holds the company details an SIE export does not contain.
type CompanyConfig struct {
	PostalCode    int    `yaml:"postal_code,omitempty"`
	PostalAddress string `yaml:"postal_address,omitempty"`
}

// InputConfig describes the SIE file.
type InputConfig struct {
	Encoding string `yaml:"encoding"`
}

// OutputConfig controls where and how the SRU files are written.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Encoding   string `yaml:"encoding"`
	LineEnding string `yaml:"line_ending"` // "crlf" or "lf"
	Log        bool   `yaml:"log"`         // append to sru-log.csv
}

// FormsConfig holds the #BLANKETT identifiers, which change with the
// authority's yearly form versions.
type FormsConfig struct {
	INK2  string `yaml:"ink2"`
	INK2R string `yaml:"ink2r"`
	INK2S string `yaml:"ink2s"`
}

// Load reads a sietosru.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional loads path if it exists and returns defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	ids := sru.DefaultFormIDs()
	return &Config{
		Input: InputConfig{
			Encoding: charset.Default,
		},
		Output: OutputConfig{
			Dir:        ".",
			Encoding:   charset.Default,
			LineEnding: "crlf",
			Log:        true,
		},
		Forms: FormsConfig{
			INK2:  ids.INK2,
			INK2R: ids.INK2R,
			INK2S: ids.INK2S,
		},
	}
}

// Validate checks the values that would otherwise fail late, after parsing.
func (c *Config) Validate() error {
	if _, err := charset.Lookup(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if _, err := charset.Lookup(c.Output.Encoding); err != nil {
		return fmt.Errorf("output.encoding: %w", err)
	}
	if _, err := sru.LineEnding(c.Output.LineEnding); err != nil {
		return fmt.Errorf("output.line_ending: %w", err)
	}
	if c.Company.PostalCode < 0 {
		return fmt.Errorf("company.postal_code: must be positive, got %d", c.Company.PostalCode)
	}
	return nil
}

// FormIDs converts the configured identifiers for the renderer.
func (c *Config) FormIDs() sru.FormIDs {
	return sru.FormIDs{INK2: c.Forms.INK2, INK2R: c.Forms.INK2R, INK2S: c.Forms.INK2S}
}
