// Package config defines the application configuration model and loads it
// from config files and environment variables, with struct-tag validation
// applied after unmarshalling.
package config
