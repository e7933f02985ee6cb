// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for any field it sets):
//  1. Environment variables (a local .env file is loaded first, if present)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the client view with defaults
// applied.
package config
