package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/streampay"
	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/urfave/cli/v3"
)

// SignerFunc turns a secret seed into the signer of mutating commands.
type SignerFunc func(secret string) (txpipeline.Signer, error)

// CommandError is a failed command whose cause has a known kind.
type CommandError struct {
	Kind chainerr.Kind
	Hint string
	Err  error
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s: %s (hint: %s)", e.Kind, e.Err, e.Hint)
}

// Run initializes and executes the streampay CLI application.
//
// It registers all available commands:
//
//   - `account`: Shows an account and its balances.
//   - `stream`: Reads and manages payment streams.
//   - `distribute`: Sends weighted amounts of a token to several recipients.
//   - `distribute-equal`: Splits an amount of a token evenly among recipients.
//
// Results are written to stdout as JSON. A failure with a known kind is
// returned as a *CommandError carrying the hint for that kind.
func Run(ctx context.Context, svc streampay.Service, newSigner SignerFunc) error {
	return describe(newApp(svc, newSigner).Run(ctx, os.Args))
}

func newApp(svc streampay.Service, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "streampay",
		Description:           "Command-line interface for payment streams and token distributions on Soroban.",
		Usage:                 "streampay [command] [flags]",
		Commands: []*cli.Command{
			accountCommand(svc),
			streamCommand(svc, newSigner),
			distributeCommand(svc, newSigner),
			distributeEqualCommand(svc, newSigner),
		},
	}
}

func describe(err error) error {
	var typed chainerr.Error
	if !errors.As(err, &typed) {
		return err
	}

	return &CommandError{Kind: typed.Kind(), Hint: chainerr.Hint(typed.Kind()), Err: err}
}

// printJSON writes v to the root command's writer.
func printJSON(c *cli.Command, v any) error {
	var w io.Writer = os.Stdout
	if root := c.Root(); root != nil && root.Writer != nil {
		w = root.Writer
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// secretFlag is shared by every command that signs.
func secretFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "secret",
		Usage:    "Secret seed (S...) of the signing account",
		Sources:  cli.EnvVars("STREAMPAY_SECRET_KEY"),
		Required: true,
	}
}

func signerFrom(c *cli.Command, newSigner SignerFunc) (txpipeline.Signer, error) {
	signer, err := newSigner(c.String("secret"))
	if err != nil {
		return nil, &chainerr.ValidationError{Field: "secret", Message: err.Error()}
	}

	return signer, nil
}
