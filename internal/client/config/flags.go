package config

import (
	"flag"
	"os"

	"github.com/champsapp/champs-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-e string   backend endpoint: "local" or "remote"
//	-u string   explicit backend base URL (overrides -e)
//	-d string   path to the local sqlite database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-u", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	endpoint := fs.String("e", string(cfg.Endpoint), "backend endpoint: local or remote")
	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "explicit backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Endpoint = Endpoint(*endpoint)
}
