package charset

import "fmt"

// Config contains charset decoding configuration.
type Config struct {
	// Default is the charset assumed when a source declares none.
	Default string `yaml:"default" mapstructure:"default"`
	// BOMOverride lets a leading byte order mark win over the
	// configured charset.
	BOMOverride bool `yaml:"bom_override" mapstructure:"bom_override"`
	// ErrorPolicy selects how malformed input is handled: "replace"
	// substitutes U+FFFD, "strict" fails the read.
	ErrorPolicy string `yaml:"error_policy" mapstructure:"error_policy" validate:"omitempty,oneof=replace strict"`
}

// ApplyDefaults applies default values to charset configuration.
func (c *Config) ApplyDefaults() {
	if c.Default == "" {
		c.Default = "UTF-8"
	}
	if c.ErrorPolicy == "" {
		c.ErrorPolicy = PolicyReplace
	}
}

// Validate validates charset configuration.
func (c *Config) Validate() error {
	if c.Default != "" {
		if _, err := Resolve(c.Default); err != nil {
			return fmt.Errorf("charset.default: %q is not a supported charset", c.Default)
		}
	}
	if c.ErrorPolicy != "" && c.ErrorPolicy != PolicyReplace && c.ErrorPolicy != PolicyStrict {
		return fmt.Errorf("charset.error_policy must be one of [replace strict] (got: %s)", c.ErrorPolicy)
	}
	return nil
}
