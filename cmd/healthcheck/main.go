package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MateusHBR/auth-microservice/internal/client/client"
	"github.com/MateusHBR/auth-microservice/internal/healthcheck"
	"github.com/MateusHBR/auth-microservice/internal/healthcheck/config"
	"github.com/MateusHBR/auth-microservice/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	probe := healthcheck.NewProbe(c, logger, cfg.ProbeInterval)
	if err := probe.Run(ctx); err != nil {
		os.Exit(1)
	}

}
