// Package config loads runtime configuration for the FarmChainX CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   path of the local state database
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, zap)
//	-g          accept only @gmail.com addresses at registration
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "state_file": "farmchainx.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "strict_email": false
//	}
//
// Keys missing from the file keep their default.
package config
