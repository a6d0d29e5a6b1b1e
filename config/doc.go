// Package config loads lanepath settings with Viper.
//
// Precedence, highest first: bound command-line flags, LANEPATH_* environment
// variables, the lanepath.yaml file, built-in defaults. A missing config file
// is not an error. Nested keys map to environment variables with dots
// replaced by underscores, so field.width is LANEPATH_FIELD_WIDTH.
package config
