// Package server wires the stores, the authentication facade, and the gRPC
// transport together and runs them until shutdown.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MateusHBR/auth-microservice/internal/logging"
	"github.com/MateusHBR/auth-microservice/internal/server/accounts"
	"github.com/MateusHBR/auth-microservice/internal/server/auth"
	"github.com/MateusHBR/auth-microservice/internal/server/config"
	"github.com/MateusHBR/auth-microservice/internal/server/sessions"

	gs "github.com/MateusHBR/auth-microservice/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *auth.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	accountStore := accounts.NewInMemoryStore(c.HashIterations)
	sessionStore := sessions.NewInMemoryStore()
	authService := auth.NewService(accountStore, sessionStore)

	return &App{config: c, logger: logger, authService: authService}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		srv := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)
		return srv.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	return nil
}
