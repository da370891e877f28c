package healthcheck

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MateusHBR/auth-microservice/internal/client/client"
	"github.com/MateusHBR/auth-microservice/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l nopLogger) With(args ...any) logging.Logger                  { return l }

type fakeClient struct {
	mu sync.Mutex

	signUpErr error
	signInErr error
	signOutErr error

	cycles    int
	usernames []string
	tokens    []string
	closed    bool
}

func (f *fakeClient) SignUp(ctx context.Context, username string, password []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cycles++
	f.usernames = append(f.usernames, username)
	return f.signUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, username string, password []byte) (*client.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &client.Session{AccountID: "acc", Token: "tok"}, nil
}

func (f *fakeClient) SignOut(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	return f.signOutErr
}

func (f *fakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeClient) cycleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cycles
}

func TestRunStopsOnCancel(t *testing.T) {
	fake := &fakeClient{}
	p := NewProbe(fake, nopLogger{}, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	deadline := time.After(time.Second)
	for fake.cycleCount() < 3 {
		select {
		case <-deadline:
			t.Fatal("probe did not cycle in time")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if !fake.closed {
		t.Error("client not closed")
	}
}

func TestRunReturnsOnTransportError(t *testing.T) {
	fake := &fakeClient{signInErr: client.ErrUnavailable}
	p := NewProbe(fake, nopLogger{}, time.Millisecond)

	err := p.Run(context.Background())
	if !errors.Is(err, client.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRunContinuesOnRejection(t *testing.T) {
	fake := &fakeClient{signUpErr: client.ErrRejected}
	p := NewProbe(fake, nopLogger{}, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := p.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.cycleCount() < 2 {
		t.Errorf("expected multiple cycles despite rejections, got %d", fake.cycleCount())
	}
}

func TestCycleUsesFreshCredentialsAndSignsOut(t *testing.T) {
	fake := &fakeClient{}
	p := NewProbe(fake, nopLogger{}, time.Second)

	if err := p.cycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.cycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.usernames) != 2 || fake.usernames[0] == fake.usernames[1] {
		t.Errorf("expected distinct throwaway usernames, got %v", fake.usernames)
	}
	if len(fake.tokens) != 2 || fake.tokens[0] != "tok" {
		t.Errorf("expected sign-out with issued token, got %v", fake.tokens)
	}
}
