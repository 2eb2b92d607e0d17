package config

import (
	"flag"
	"os"
	"time"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the VolunteerHub API (default from Config)
//	-f string   path to the local state database
//	-r int      retry attempt budget per API call
//	-w int      retry delay in milliseconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-r", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the VolunteerHub API")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the local state database")
	fs.IntVar(&cfg.RetryAttempts, "r", cfg.RetryAttempts, "retry attempt budget per API call")
	retryDelayMs := fs.Int("w", int(cfg.RetryDelay.Milliseconds()), "retry delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RetryDelay = time.Duration(*retryDelayMs) * time.Millisecond
}
