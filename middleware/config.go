package middleware

import "github.com/charkit/charkit/validation"

// Config contains configuration for the charset decoding middleware.
type Config struct {
	// DefaultCharset is assumed for request bodies whose Content-Type
	// carries no charset parameter.
	DefaultCharset string `yaml:"default_charset" mapstructure:"default_charset" validate:"omitempty,charset"`
	// BOMOverride lets a leading byte order mark win over the declared
	// charset.
	BOMOverride bool `yaml:"bom_override" mapstructure:"bom_override"`
}

// ApplyDefaults applies default values to middleware configuration.
func (c *Config) ApplyDefaults() {
	if c.DefaultCharset == "" {
		c.DefaultCharset = "UTF-8"
	}
}

// Validate validates middleware configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
