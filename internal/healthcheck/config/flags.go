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
//	-a string     address and port of the authentication server
//	-i duration   interval between probe cycles
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.ProbeInterval, "i", cfg.ProbeInterval, "interval between probe cycles")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
