// Package config loads runtime configuration for the LearningHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   path of the SQLite store (default "hub.db")
//	-b string   auth backend, mock or local (default "mock")
//	-l int      backend latency in milliseconds (default 1000)
//
// # JSON schema
//
// Durations are strings like "250ms" or integer nanoseconds:
//
//	{
//	  "store_path": "hub.db",
//	  "backend": "local",
//	  "latency": "250ms",
//	  "token_secret": "change-me",
//	  "token_ttl": "24h",
//	  "log_level": "debug"
//	}
//
// The local backend requires token_secret. Environment variables are not read.
package config
