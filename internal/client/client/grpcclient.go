// Package client wraps the gRPC connection to the authentication service
// behind a small typed API used by the CLI and the health probe.
package client

import (
	"context"

	pb "github.com/MateusHBR/auth-microservice/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Session is the result of a successful sign-in.
type Session struct {
	AccountID string
	Token     string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SignUp registers a new account. A wire-level Failure status surfaces as
// ErrRejected; the server does not say why.
func (s *GRPCClient) SignUp(ctx context.Context, username string, password []byte) error {

	req := &pb.SignUpRequest{Username: username, Password: string(password)}

	resp, err := s.client.SignUp(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatusCode() != pb.StatusCode_SUCCESS {
		return ErrRejected
	}

	return nil
}

// SignIn authenticates and returns the issued session. A Failure status
// surfaces as ErrRejected regardless of cause.
func (s *GRPCClient) SignIn(ctx context.Context, username string, password []byte) (*Session, error) {

	req := &pb.SignInRequest{Username: username, Password: string(password)}

	resp, err := s.client.SignIn(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetStatusCode() != pb.StatusCode_SUCCESS {
		return nil, ErrRejected
	}

	return &Session{AccountID: resp.GetAccountId(), Token: resp.GetSessionToken()}, nil
}

// SignOut revokes the token. The server treats unknown tokens as a
// successful logout, so only transport faults can fail here.
func (s *GRPCClient) SignOut(ctx context.Context, token string) error {

	req := &pb.SignOutRequest{SessionToken: token}

	if _, err := s.client.SignOut(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}
