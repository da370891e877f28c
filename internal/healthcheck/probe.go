// Package healthcheck implements a periodic end-to-end probe of the
// authentication service: every cycle it signs up a throwaway account,
// signs in, and signs the session out again, exercising the full RPC
// surface the way a real client would.
package healthcheck

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MateusHBR/auth-microservice/internal/client/client"
	"github.com/MateusHBR/auth-microservice/internal/common"
	"github.com/MateusHBR/auth-microservice/internal/logging"
)

// authClient is the slice of the gRPC client the probe needs; the concrete
// implementation is *client.GRPCClient.
type authClient interface {
	SignUp(ctx context.Context, username string, password []byte) error
	SignIn(ctx context.Context, username string, password []byte) (*client.Session, error)
	SignOut(ctx context.Context, token string) error
	Close() error
}

type Probe struct {
	client   authClient
	logger   logging.Logger
	interval time.Duration
}

func NewProbe(c authClient, l logging.Logger, interval time.Duration) *Probe {
	return &Probe{client: c, logger: l, interval: interval}
}

// Run executes probe cycles until ctx is cancelled or a cycle fails with a
// transport-level error. A rejected probe is logged and does not stop the
// loop; an unreachable server does, so the process exit code reflects
// service health.
func (p *Probe) Run(ctx context.Context) error {
	defer p.client.Close()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// cycle performs one signup/signin/signout round trip with freshly
// generated throwaway credentials.
func (p *Probe) cycle(ctx context.Context) error {
	username := uuid.NewString()
	password := []byte(uuid.NewString())
	defer common.WipeByteArray(password)

	start := time.Now()

	if err := p.client.SignUp(ctx, username, password); err != nil {
		return p.report(ctx, "SignUp", err)
	}

	session, err := p.client.SignIn(ctx, username, password)
	if err != nil {
		return p.report(ctx, "SignIn", err)
	}

	if err := p.client.SignOut(ctx, session.Token); err != nil {
		return p.report(ctx, "SignOut", err)
	}

	p.logger.Info(ctx, "probe succeeded", "duration", time.Since(start).String())
	return nil
}

// report logs a failed step. Rejections are expected to be transient (a
// username collision, for example) and are swallowed so the loop keeps
// going; everything else is returned to the caller.
func (p *Probe) report(ctx context.Context, op string, err error) error {
	if errors.Is(err, client.ErrRejected) {
		p.logger.Warn(ctx, "probe rejected", "op", op)
		return nil
	}
	p.logger.Error(ctx, "probe failed", "op", op, "error", err.Error())
	return err
}
