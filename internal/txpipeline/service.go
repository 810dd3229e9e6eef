// Package txpipeline runs Soroban contract invocations end to end: it builds
// the invocation envelope, simulates it, merges the simulation footprint and
// fees into it, has it signed, submits it and polls until it is final.
//
// Read-only calls stop after the simulation and return its decoded result.
package txpipeline

import (
	"context"
	"time"

	"github.com/gabapcia/streampay/internal/pkg/telemetry"

	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Invocation identifies a contract call.
type Invocation struct {
	ContractID string      // C... address of the callee
	Method     string      // contract function name
	Args       []xdr.ScVal // typed arguments in declaration order
}

// Outcome is a successfully applied invocation.
type Outcome struct {
	Hash        string // transaction hash, hex encoded
	Ledger      uint32 // ledger the transaction was applied in
	ReturnValue any    // decoded return value, nil for functions returning nothing
}

// Service runs invocations against the network.
type Service interface {
	// Invoke builds, simulates, signs, submits and confirms inv, paid for and
	// signed by signer. It fails with a chainerr.SimulationError when the dry
	// run fails, a chainerr.TransactionError when the network rejects the
	// transaction and a chainerr.TransactionTimeoutError when it is not final
	// before the poll timeout.
	Invoke(ctx context.Context, signer Signer, inv Invocation) (Outcome, error)

	// Query simulates inv with source as the transaction source and returns
	// the decoded return value. Nothing is signed or submitted.
	Query(ctx context.Context, source string, inv Invocation) (any, error)
}

// config holds the tunables of the pipeline.
type config struct {
	networkPassphrase string        // passphrase of the target network
	baseFee           int64         // inclusion fee in stroops, before resource fees
	txTimeout         time.Duration // validity window of built transactions
	pollInterval      time.Duration // delay between getTransaction calls
	pollTimeout       time.Duration // how long to wait for finality
}

// Option defines a functional option for configuring the pipeline.
type Option func(*config)

type service struct {
	cfg config

	accounts AccountSource
	rpc      RPC

	tracer      trace.Tracer
	invocations metric.Int64Counter
}

// Compile-time assertion that service implements the Service interface.
var _ Service = (*service)(nil)

// New creates a pipeline reading sequence numbers from accounts and talking
// to the network through rpc.
//
// Default configuration:
//   - networkPassphrase: Stellar testnet
//   - baseFee:           100 stroops
//   - txTimeout:         30 seconds
//   - pollInterval:      1 second
//   - pollTimeout:       30 seconds
func New(accounts AccountSource, rpc RPC, opts ...Option) *service {
	cfg := config{
		networkPassphrase: network.TestNetworkPassphrase,
		baseFee:           txnbuild.MinBaseFee,
		txTimeout:         30 * time.Second,
		pollInterval:      1 * time.Second,
		pollTimeout:       30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := telemetry.Meter("txpipeline")
	invocations, _ := meter.Int64Counter("streampay.txpipeline.invocations",
		metric.WithDescription("Contract invocations by outcome kind"),
	)

	return &service{
		cfg:         cfg,
		accounts:    accounts,
		rpc:         rpc,
		tracer:      telemetry.Tracer("txpipeline"),
		invocations: invocations,
	}
}

// WithNetworkPassphrase sets the passphrase transactions are signed for.
func WithNetworkPassphrase(passphrase string) Option {
	return func(c *config) {
		c.networkPassphrase = passphrase
	}
}

// WithBaseFee sets the inclusion fee in stroops. Values below the network
// minimum are raised to it.
func WithBaseFee(fee int64) Option {
	return func(c *config) {
		c.baseFee = max(fee, txnbuild.MinBaseFee)
	}
}

// WithTxTimeout sets how long a built transaction stays valid.
func WithTxTimeout(d time.Duration) Option {
	return func(c *config) {
		c.txTimeout = d
	}
}

// WithPollInterval sets the delay between two finality checks.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithPollTimeout sets how long Invoke waits for a submitted transaction to
// become final before giving up with a TransactionTimeoutError.
func WithPollTimeout(d time.Duration) Option {
	return func(c *config) {
		c.pollTimeout = d
	}
}
