// Package locale resolves number separators for a language tag from a
// caller-supplied table of conventions and binds them to num.Format.
package locale

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Separators are the two strings num.Format needs.
type Separators struct {
	DecimalPoint       string `yaml:"decimal_point"`
	ThousandsSeparator string `yaml:"thousands_sep"`
}

// Convention holds the separators for general numbers and for money.
type Convention struct {
	Numeric  Separators `yaml:"numeric"`
	Monetary Separators `yaml:"monetary"`
}

// Config maps BCP 47 tags to conventions.
type Config struct {
	Default string                `yaml:"default"`
	Locales map[string]Convention `yaml:"locales"`
}

// DefaultConfig returns a configuration with English conventions only.
func DefaultConfig() *Config {
	en := Separators{DecimalPoint: ".", ThousandsSeparator: ","}
	return &Config{
		Default: "en",
		Locales: map[string]Convention{
			"en": {Numeric: en, Monetary: en},
		},
	}
}

// LoadConfig reads and validates a YAML conventions file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("locale config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML conventions document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the default is configured, every key parses as a
// language tag and every convention has a decimal point.
func (c *Config) Validate() error {
	if len(c.Locales) == 0 {
		return ErrNoLocales
	}
	if _, ok := c.Locales[c.Default]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDefault, c.Default)
	}
	for key, conv := range c.Locales {
		if _, err := language.Parse(key); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidTag, key, err)
		}
		if conv.Numeric.DecimalPoint == "" {
			return fmt.Errorf("%w: %s numeric", ErrEmptyDecimalPoint, key)
		}
		if conv.Monetary.DecimalPoint == "" {
			return fmt.Errorf("%w: %s monetary", ErrEmptyDecimalPoint, key)
		}
	}
	return nil
}
