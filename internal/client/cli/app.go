// Package cli implements the operator command-line interface: one-shot
// signup, signin, and signout subcommands against a running authentication
// server.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MateusHBR/auth-microservice/internal/client/client"
	"github.com/MateusHBR/auth-microservice/internal/client/config"
	"github.com/MateusHBR/auth-microservice/internal/common"
)

// authClient is the slice of the gRPC client the CLI needs; the concrete
// implementation is *client.GRPCClient.
type authClient interface {
	SignUp(ctx context.Context, username string, password []byte) error
	SignIn(ctx context.Context, username string, password []byte) (*client.Session, error)
	SignOut(ctx context.Context, token string) error
	Close() error
}

type App struct {
	config *config.Config
	auth   authClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{
		config: cfg,
		auth:   c,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

const usage = `Usage:
  client [-a host:port] signup  -u <username> [-p <password>]
  client [-a host:port] signin  -u <username> [-p <password>]
  client [-a host:port] signout -t <session token>

When -p is omitted the password is prompted without echo.`

// Run dispatches a single subcommand. args is os.Args[1:] minus nothing:
// config flags like -a are filtered out by the flag sets below.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.auth.Close()

	cmd, rest := splitCommand(args)

	switch cmd {
	case "signup":
		return a.signUp(ctx, rest)
	case "signin":
		return a.signIn(ctx, rest)
	case "signout":
		return a.signOut(ctx, rest)
	case "":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// splitCommand finds the first non-flag argument and returns it together
// with everything after it. Leading flags (like -a and its value) belong to
// the config loader and are skipped.
func splitCommand(args []string) (string, []string) {
	for i := 0; i < len(args); i++ {
		if len(args[i]) > 0 && args[i][0] != '-' {
			// Could be a flag value rather than the command; a value is
			// always preceded by a flag without '='.
			if i > 0 && len(args[i-1]) > 0 && args[i-1][0] == '-' && !containsEquals(args[i-1]) {
				continue
			}
			return args[i], args[i+1:]
		}
	}
	return "", nil
}

func containsEquals(s string) bool {
	for _, r := range s {
		if r == '=' {
			return true
		}
	}
	return false
}

func (a *App) credentials(args []string, name string) (string, []byte, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}

	user := *username
	if user == "" {
		var err error
		user, err = GetSimpleText(a.reader, "Enter username", a.out)
		if err != nil {
			return "", nil, err
		}
	}

	if *password != "" {
		return user, []byte(*password), nil
	}

	pw, err := GetPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return user, pw, nil
}

func (a *App) signUp(ctx context.Context, args []string) error {
	username, password, err := a.credentials(args, "signup")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.SignUp(ctx, username, password); err != nil {
		if errors.Is(err, client.ErrRejected) {
			fmt.Fprintln(a.out, "Sign-up failed.")
			return err
		}
		return err
	}

	fmt.Fprintln(a.out, "Sign-up succeeded.")
	return nil
}

func (a *App) signIn(ctx context.Context, args []string) error {
	username, password, err := a.credentials(args, "signin")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.SignIn(ctx, username, password)
	if err != nil {
		if errors.Is(err, client.ErrRejected) {
			fmt.Fprintln(a.out, "Sign-in failed.")
			return err
		}
		return err
	}

	fmt.Fprintf(a.out, "Sign-in succeeded.\naccount_id: %s\nsession_token: %s\n", session.AccountID, session.Token)
	return nil
}

func (a *App) signOut(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signout", flag.ContinueOnError)
	fs.SetOutput(a.out)
	token := fs.String("t", "", "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tok := *token
	if tok == "" {
		var err error
		tok, err = GetSimpleText(a.reader, "Enter session token", a.out)
		if err != nil {
			return err
		}
	}

	if err := a.auth.SignOut(ctx, tok); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Sign-out succeeded.")
	return nil
}
