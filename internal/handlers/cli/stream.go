package cli

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/stream"
	"github.com/gabapcia/streampay/internal/streampay"
	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/urfave/cli/v3"
)

// streamAction is the signature shared by the single-stream mutations.
type streamAction func(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error)

func streamIDFlag() cli.Flag {
	return &cli.Uint64Flag{
		Name:     "id",
		Usage:    "Stream id",
		Required: true,
	}
}

// parseAmount reads a token amount with up to seven decimals into stroops.
func parseAmount(field, s string) (sdkmath.Int, error) {
	amount, err := stream.ParseAmount(s)
	if err != nil {
		return sdkmath.Int{}, &chainerr.ValidationError{Field: field, Message: err.Error()}
	}

	return amount, nil
}

// streamCommand returns the `stream` command group.
//
// Usage example:
//
//	streampay stream get --id 5
//	streampay stream create --recipient GABC... --token CABC... --amount 100 --end 1767225600
//	streampay stream withdraw --id 5 --amount 12.5
func streamCommand(svc streampay.Service, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		Name:        "stream",
		Description: "Read and manage payment streams.",
		Usage:       "Payment stream operations.",
		Commands: []*cli.Command{
			getStreamCommand(svc),
			listStreamsCommand(svc),
			withdrawableCommand(svc),
			createStreamCommand(svc, newSigner),
			withdrawCommand(svc, newSigner),
			streamActionCommand("withdraw-max", "Withdraw everything the stream has vested.", svc.WithdrawMax, newSigner),
			streamActionCommand("pause", "Pause a stream. Sender only.", svc.PauseStream, newSigner),
			streamActionCommand("resume", "Resume a paused stream. Sender only.", svc.ResumeStream, newSigner),
			streamActionCommand("cancel", "Cancel a stream. Sender only.", svc.CancelStream, newSigner),
		},
	}
}

func getStreamCommand(svc streampay.Service) *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show a stream.",
		Flags: []cli.Flag{streamIDFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			st, err := svc.GetStream(ctx, c.Uint64("id"))
			if err != nil {
				return err
			}

			return printJSON(c, st)
		},
	}
}

func listStreamsCommand(svc streampay.Service) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the streams an address sends or receives.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Sender or recipient address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			streams, err := svc.GetStreams(ctx, c.String("address"))
			if err != nil {
				return err
			}

			return printJSON(c, streams)
		},
	}
}

func withdrawableCommand(svc streampay.Service) *cli.Command {
	return &cli.Command{
		Name:  "withdrawable",
		Usage: "Show how much a stream's recipient can withdraw now.",
		Flags: []cli.Flag{streamIDFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Uint64("id")

			amount, err := svc.GetWithdrawableAmount(ctx, id)
			if err != nil {
				return err
			}

			return printJSON(c, map[string]any{
				"streamId":  id,
				"amount":    amount,
				"formatted": stream.FormatAmount(amount),
			})
		},
	}
}

func createStreamCommand(svc streampay.Service, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a stream paying --amount of --token to --recipient between --start and --end.",
		Flags: []cli.Flag{
			secretFlag(),
			&cli.StringFlag{Name: "recipient", Usage: "Recipient address", Required: true},
			&cli.StringFlag{Name: "token", Usage: "Token contract address (C...)", Required: true},
			&cli.StringFlag{Name: "amount", Usage: "Total amount in token units, up to 7 decimals", Required: true},
			&cli.Uint64Flag{Name: "start", Usage: "Start time in Unix seconds (default: now)"},
			&cli.Uint64Flag{Name: "end", Usage: "End time in Unix seconds", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := parseAmount("totalAmount", c.String("amount"))
			if err != nil {
				return err
			}

			start := c.Uint64("start")
			if start == 0 {
				start = uint64(time.Now().Unix())
			}

			signer, err := signerFrom(c, newSigner)
			if err != nil {
				return err
			}

			res, err := svc.CreateStream(ctx, signer, streampay.CreateStreamParams{
				Recipient:   c.String("recipient"),
				Token:       c.String("token"),
				TotalAmount: amount,
				StartTime:   start,
				EndTime:     c.Uint64("end"),
			})
			if err != nil {
				return err
			}

			return printJSON(c, res)
		},
	}
}

func withdrawCommand(svc streampay.Service, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		Name:  "withdraw",
		Usage: "Withdraw --amount from a stream. Recipient only.",
		Flags: []cli.Flag{
			secretFlag(),
			streamIDFlag(),
			&cli.StringFlag{Name: "amount", Usage: "Amount in token units, up to 7 decimals", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := parseAmount("amount", c.String("amount"))
			if err != nil {
				return err
			}

			signer, err := signerFrom(c, newSigner)
			if err != nil {
				return err
			}

			res, err := svc.Withdraw(ctx, signer, c.Uint64("id"), amount)
			if err != nil {
				return err
			}

			return printJSON(c, res)
		},
	}
}

func streamActionCommand(name, usage string, action streamAction, newSigner SignerFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{secretFlag(), streamIDFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, newSigner)
			if err != nil {
				return err
			}

			res, err := action(ctx, signer, c.Uint64("id"))
			if err != nil {
				return err
			}

			return printJSON(c, res)
		},
	}
}
