package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// requestLogInterceptor logs every unary call with its duration. Request
// payloads are never logged: they carry credentials.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request handled",
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"transport_error", err != nil,
	)

	return resp, err
}
