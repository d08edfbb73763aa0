package config

import (
	"flag"
	"os"
	"time"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/flagx"
)

var knownFlags = []string{"-b", "-l", "-d", "-n", "-k", "-m", "-t", "-v"}

// parseFlags overlays cfg with command-line flags. Arguments that belong to
// other loaders (-c/-config) are filtered out first with flagx.FilterArgs.
// An unparsable value panics, matching the JSON loader.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "backend base URL")
	fs.StringVar(&cfg.CallbackAddr, "l", cfg.CallbackAddr, "listen address for the authorization callback")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	fs.StringVar(&cfg.AppID, "n", cfg.AppID, "application id used to namespace the session")
	fs.StringVar(&cfg.IdentityToken, "k", cfg.IdentityToken, "custom identity token")
	fs.StringVar(&cfg.TransferMode, "m", cfg.TransferMode, "transfer mode: http or s3")
	timeout := fs.Int("t", int(cfg.TransferTimeout.Seconds()), "transfer timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TransferTimeout = time.Duration(*timeout) * time.Second
}
