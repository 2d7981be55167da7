// Package authctl implements the operator command-line tool. It can
// register an account against a running server and mint access tokens
// locally from the signing secret, e.g. for smoke tests or support work.
package authctl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const usage = `Usage:
  authctl register -addr <base-url>
      Register a user against a running server. Prompts for email and
      password; the password is read without terminal echo.

  authctl mint-token -secret <key> -user <id> [-role <role>] [-issuer <iss>] [-minutes <n>]
      Sign an access token locally. Requires the server's signing secret.
`

// App wires the CLI's input and output streams so commands stay testable.
type App struct {
	in         *bufio.Reader
	out        io.Writer
	httpClient *http.Client
}

func NewApp(in io.Reader, out io.Writer) *App {
	return &App{
		in:         bufio.NewReader(in),
		out:        out,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Run dispatches to a subcommand. The first argument selects the command;
// the rest are parsed by the command itself.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "register":
		return a.Register(ctx, args[1:])
	case "mint-token":
		return a.MintToken(args[1:])
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
