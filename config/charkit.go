package config

import (
	"fmt"

	"github.com/charkit/charkit/charset"
	"github.com/charkit/charkit/middleware"
)

// Config is the full configuration for an application built on
// charkit: the shared base fields plus the charset and middleware
// sections.
type Config struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`

	Charset    charset.Config    `yaml:"charset" mapstructure:"charset"`
	Middleware middleware.Config `yaml:"middleware" mapstructure:"middleware"`
}

// Load reads, defaults, and validates the full configuration for the
// named application. Files and environment variables are resolved by
// LoadConfig; name fills Config.Name when no file sets one.
func Load(name string, opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(name, &cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.BaseConfig.ApplyDefaults()
	c.Charset.ApplyDefaults()
	c.Middleware.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	if err := c.Charset.Validate(); err != nil {
		return fmt.Errorf("charset: %w", err)
	}
	if err := c.Middleware.Validate(); err != nil {
		return fmt.Errorf("middleware: %w", err)
	}
	return nil
}
