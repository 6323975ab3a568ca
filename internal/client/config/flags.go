package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   path of the SQLite store
//	-b string   auth backend: mock or local
//	-l int      backend latency in milliseconds
//
// Args are filtered through flagx.FilterArgs first, so -c/-config and
// anything unknown are left alone.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorePath, "a", cfg.StorePath, "path of the local store")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "auth backend (mock|local)")
	latency := fs.Int64("l", cfg.Latency.Milliseconds(), "backend latency (in milliseconds)")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.Latency = time.Duration(*latency) * time.Millisecond
	return nil
}
