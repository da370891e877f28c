package config

import (
	"flag"
	"os"

	"github.com/MateusHBR/auth-microservice/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line
// flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-i int      PBKDF2 iteration count for new password hashes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.IntVar(&config.HashIterations, "i", config.HashIterations, "password hash iteration count")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
