// Package config loads runtime configuration for the planmate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the planmate API (auth and domain calls share it)
//	-d string   path to the local session database
//	-t string   per-request timeout, e.g. "30s" (0 disables the client timeout)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "session_db_path": "planmate.db",
//	  "request_timeout": "30s"
//	}
package config
