package client

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrRejected means the server answered with a Failure status. The
	// protocol deliberately carries no detail, so neither does this error.
	ErrRejected = errors.New("request rejected")

	// ErrUnavailable means the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")
)

// mapError translates transport errors into the package's sentinel errors
// where a caller can act on them, and passes everything else through.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return err
	}
}
