// Package logger provides structured logging for charkit using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("textio")
//	log.Debug("reader materialized", logger.Fields("reader_id", id))
package logger
