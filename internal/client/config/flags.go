package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpolyakov/planmate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the planmate API (default from Config)
//	-d string   session database path (default from Config)
//	-t string   request timeout as a duration string (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the planmate API")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the session database")
	timeout := fs.String("t", cfg.RequestTimeout.String(), "request timeout (e.g. 30s, 0 to disable)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	parsed, err := time.ParseDuration(*timeout)
	if err != nil {
		panic(err)
	}
	cfg.RequestTimeout = parsed
}
