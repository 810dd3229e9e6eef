package cli

import (
	"context"

	"github.com/gabapcia/streampay/internal/streampay"

	"github.com/urfave/cli/v3"
)

// accountCommand returns a CLI command that shows a ledger account.
//
// Usage example:
//
//	streampay account --id GABC...
//	streampay account --id GABC... --exists
func accountCommand(svc streampay.Service) *cli.Command {
	return &cli.Command{
		Name:        "account",
		Description: "Show an account with its balances, or only whether it exists.",
		Usage:       "Looks up an account on the ledger.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Account id (G...)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "exists",
				Usage: "Only report whether the account exists",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.String("id")

			if c.Bool("exists") {
				exists, err := svc.AccountExists(ctx, id)
				if err != nil {
					return err
				}

				return printJSON(c, map[string]bool{"exists": exists})
			}

			info, err := svc.GetAccount(ctx, id)
			if err != nil {
				return err
			}

			return printJSON(c, info)
		},
	}
}
