// Package config provides configuration loading, merging, and validation
// facilities for the birthday keeper.
//
// Configuration is assembled from multiple sources. The first source that
// sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path taken from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated runtime configuration.
package config
