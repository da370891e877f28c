// Package grpc exposes the authentication facade over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/MateusHBR/auth-microservice/internal/logging"
	pb "github.com/MateusHBR/auth-microservice/internal/proto"
	"github.com/MateusHBR/auth-microservice/internal/server/auth"
	"google.golang.org/grpc"
)

// authService is the slice of the facade the transport needs; the concrete
// implementation is *auth.Service.
type authService interface {
	SignUp(ctx context.Context, username string, password []byte) error
	SignIn(ctx context.Context, username string, password []byte) (*auth.Session, error)
	SignOut(ctx context.Context, token string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, svc authService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		auth:    svc,
	}
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
