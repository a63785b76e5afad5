package config

import (
	"flag"
	"os"
	"time"

	"cvterm/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the CV platform service
//	-t int      request timeout in seconds
//	-d string   path of the local session database
//
// Only these flags are consumed here; the args are filtered first so flags
// owned by other components (such as -c/-config) are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the CV platform service")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
}
