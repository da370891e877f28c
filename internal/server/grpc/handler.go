package grpc

import (
	"context"
	"errors"

	"github.com/MateusHBR/auth-microservice/internal/common"
	pb "github.com/MateusHBR/auth-microservice/internal/proto"
)

// The handlers collapse every service error into the two-valued wire
// status. Nothing beyond Success/Failure is leaked to the caller: a
// duplicate username on sign-up, or an unknown username versus a wrong
// password on sign-in, all look the same on the wire.

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {

	err := s.auth.SignUp(ctx, req.GetUsername(), []byte(req.GetPassword()))
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			s.logger.Info(ctx, "sign-up rejected", "reason", "duplicate username")
		} else {
			// Hashing and other internal faults are an operational signal.
			s.logger.Error(ctx, "sign-up failed", "error", err.Error())
		}
		return &pb.SignUpResponse{StatusCode: pb.StatusCode_FAILURE}, nil
	}

	s.logger.Info(ctx, "account registered", "username", req.GetUsername())
	return &pb.SignUpResponse{StatusCode: pb.StatusCode_SUCCESS}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {

	session, err := s.auth.SignIn(ctx, req.GetUsername(), []byte(req.GetPassword()))
	if err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Error(ctx, "sign-in failed", "error", err.Error())
		}
		// AccountId and SessionToken are empty strings, never omitted.
		return &pb.SignInResponse{
			StatusCode:   pb.StatusCode_FAILURE,
			AccountId:    "",
			SessionToken: "",
		}, nil
	}

	return &pb.SignInResponse{
		StatusCode:   pb.StatusCode_SUCCESS,
		AccountId:    session.AccountID,
		SessionToken: session.Token,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {

	// Revoking an unknown token is a successful logout.
	if err := s.auth.SignOut(ctx, req.GetSessionToken()); err != nil {
		s.logger.Error(ctx, "sign-out failed", "error", err.Error())
	}

	return &pb.SignOutResponse{StatusCode: pb.StatusCode_SUCCESS}, nil
}
