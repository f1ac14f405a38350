// Package util provides generic utility functions for charkit
// packages and their consumers.
//
// It includes slice and map helpers, pointer helpers, size parsing for
// config values, and string sanitization for values read from the
// environment.
package util
