// Package config provides configuration loading and validation for
// charkit applications.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with optional .env support via godotenv. Config files are
// resolved from standard locations (./cmd/<app>/config.yml,
// ./config/config.yml, ./config.yml) unless an explicit path is given.
//
// # Usage
//
// Load the full charkit configuration:
//
//	cfg, err := config.Load("reader-demo")
//	if err != nil {
//	    return err
//	}
//	logger.Init(&cfg.Logging)
//
// Or embed BaseConfig in an application-specific struct and load it
// with LoadConfig:
//
//	type AppConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    Charset charset.Config `yaml:"charset" mapstructure:"charset"`
//	}
//
//	var cfg AppConfig
//	err := config.LoadConfig("reader-demo", &cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g. CHARSET_DEFAULT, MIDDLEWARE_BOM_OVERRIDE).
package config
