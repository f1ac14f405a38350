// Package validation provides input validation utilities for charkit
// configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for config types; the custom `charset` tag checks that a
// field names a resolvable charset.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Default string `json:"default" validate:"required,charset"`
//	    Policy  string `json:"policy" validate:"oneof=strict replace"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.RequiredCharset("default", cfg.Default)
//	err := v.Validate()
package validation
