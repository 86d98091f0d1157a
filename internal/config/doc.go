// Package config provides configuration loading, merging, and validation
// facilities for the importer.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it, in the following priority order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
