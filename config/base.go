package config

import (
	"fmt"

	"github.com/charkit/charkit/logger"
	"github.com/charkit/charkit/validation"
)

// BaseConfig contains the fields every charkit application needs.
// Projects extend it by embedding it in their own config structs:
//
//	type AppConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    Charset charset.Config `yaml:"charset" mapstructure:"charset"`
//	}
type BaseConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetBaseConfig returns the base config. When embedded in a larger
// config struct, the promoted method lets the embedding struct satisfy
// interfaces keyed on it.
func (c *BaseConfig) GetBaseConfig() *BaseConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call
// c.BaseConfig.ApplyDefaults() first.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.BaseConfig.Validate()
// first.
func (c *BaseConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
