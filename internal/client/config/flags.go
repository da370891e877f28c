package config

import (
	"flag"
	"os"

	"github.com/MateusHBR/auth-microservice/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   address and port of the authentication server
//
// Only the flags listed here are parsed; subcommand flags like -u or -p
// are left for the CLI dispatcher.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
