// Package config loads process settings from the environment and toaster
// settings from a YAML file.
package config
