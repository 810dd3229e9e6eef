package cli

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/gabapcia/streampay/internal/streampay"

	"github.com/urfave/cli/v3"
)

// distributeCommand returns a CLI command sending a weighted distribution.
// The n-th --amount goes to the n-th --recipient.
//
// Usage example:
//
//	streampay distribute --token CABC... --recipient GA... --amount 10 --recipient GB... --amount 2.5
func distributeCommand(svc streampay.Service, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		Name:        "distribute",
		Description: "Send a different amount of a token to each recipient in a single transaction.",
		Usage:       "Weighted token distribution.",
		Flags: []cli.Flag{
			secretFlag(),
			&cli.StringFlag{Name: "token", Usage: "Token contract address (C...)", Required: true},
			&cli.StringSliceFlag{Name: "recipient", Usage: "Recipient address, repeatable", Required: true},
			&cli.StringSliceFlag{Name: "amount", Usage: "Amount for the recipient at the same position, repeatable", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			raw := c.StringSlice("amount")
			amounts := make([]sdkmath.Int, 0, len(raw))
			for _, s := range raw {
				amount, err := parseAmount("amounts", s)
				if err != nil {
					return err
				}

				amounts = append(amounts, amount)
			}

			signer, err := signerFrom(c, newSigner)
			if err != nil {
				return err
			}

			res, err := svc.Distribute(ctx, signer, c.String("token"), c.StringSlice("recipient"), amounts)
			if err != nil {
				return err
			}

			return printJSON(c, res)
		},
	}
}

// distributeEqualCommand returns a CLI command splitting an amount evenly.
//
// Usage example:
//
//	streampay distribute-equal --token CABC... --recipient GA... --recipient GB... --total 100
func distributeEqualCommand(svc streampay.Service, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		Name:        "distribute-equal",
		Description: "Split an amount of a token evenly among recipients in a single transaction.",
		Usage:       "Equal token distribution.",
		Flags: []cli.Flag{
			secretFlag(),
			&cli.StringFlag{Name: "token", Usage: "Token contract address (C...)", Required: true},
			&cli.StringSliceFlag{Name: "recipient", Usage: "Recipient address, repeatable", Required: true},
			&cli.StringFlag{Name: "total", Usage: "Total amount in token units, up to 7 decimals", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			total, err := parseAmount("totalAmount", c.String("total"))
			if err != nil {
				return err
			}

			signer, err := signerFrom(c, newSigner)
			if err != nil {
				return err
			}

			res, err := svc.DistributeEqual(ctx, signer, c.String("token"), c.StringSlice("recipient"), total)
			if err != nil {
				return err
			}

			return printJSON(c, res)
		},
	}
}
