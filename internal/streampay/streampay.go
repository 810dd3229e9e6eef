// Package streampay is the service layer applications use to manage payment
// streams and token distributions on a Soroban network.
//
// Every method validates its input before touching the network, runs contract
// calls through a txpipeline.Service under a retry policy and returns either
// a domain value or a chainerr.Error describing what went wrong.
package streampay

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/gabapcia/streampay/internal/pkg/resilience/retry"
	"github.com/gabapcia/streampay/internal/stream"
	"github.com/gabapcia/streampay/internal/txpipeline"
)

// Ledger reads accounts from the ledger API.
type Ledger interface {
	// GetAccount returns the account with its balances. It fails with a
	// chainerr.AccountNotFoundError when the account does not exist.
	GetAccount(ctx context.Context, accountID string) (stream.AccountInfo, error)
}

// Events reads contract events. It backs stream enumeration when the
// contract cannot report how many streams exist.
type Events interface {
	LatestLedger(ctx context.Context) (uint32, error)

	// GetEvents returns every event of contractID whose first topic is topic,
	// starting at startLedger.
	GetEvents(ctx context.Context, contractID, topic string, startLedger uint32) ([]stream.ContractEvent, error)
}

// CreateStreamParams describes a new stream. Times are Unix seconds.
type CreateStreamParams struct {
	Recipient   string
	Token       string
	TotalAmount sdkmath.Int
	StartTime   uint64
	EndTime     uint64
}

// Service exposes one method per payment stream operation.
type Service interface {
	GetAccount(ctx context.Context, accountID string) (stream.AccountInfo, error)
	AccountExists(ctx context.Context, accountID string) (bool, error)

	GetStream(ctx context.Context, streamID uint64) (stream.Stream, error)

	// GetStreams returns the streams where address is the sender or the
	// recipient, ordered by id. Every stream is fetched one at a time.
	GetStreams(ctx context.Context, address string) ([]stream.Stream, error)
	GetWithdrawableAmount(ctx context.Context, streamID uint64) (sdkmath.Int, error)

	CreateStream(ctx context.Context, signer txpipeline.Signer, params CreateStreamParams) (stream.TransactionResult[uint64], error)

	// Withdraw fails with a chainerr.InsufficientFundsError, without
	// submitting anything, when amount exceeds the withdrawable amount.
	Withdraw(ctx context.Context, signer txpipeline.Signer, streamID uint64, amount sdkmath.Int) (stream.TransactionResult[struct{}], error)
	WithdrawMax(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error)
	PauseStream(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error)
	ResumeStream(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error)
	CancelStream(ctx context.Context, signer txpipeline.Signer, streamID uint64) (stream.TransactionResult[struct{}], error)

	// Distribute sends amounts[i] of token to recipients[i].
	Distribute(ctx context.Context, signer txpipeline.Signer, token string, recipients []string, amounts []sdkmath.Int) (stream.TransactionResult[struct{}], error)

	// DistributeEqual splits totalAmount of token evenly among recipients.
	DistributeEqual(ctx context.Context, signer txpipeline.Signer, token string, recipients []string, totalAmount sdkmath.Int) (stream.TransactionResult[struct{}], error)
}

// Config is the immutable configuration of a Service.
type Config struct {
	NetworkPassphrase     string        `validate:"required"`
	RPCURL                string        `validate:"required,url"`
	HorizonURL            string        `validate:"required,url"`
	StreamContractID      string        `validate:"required,stellar_address,startswith=C"`
	DistributorContractID string        `validate:"omitempty,stellar_address,startswith=C"`
	SourceAccount         string        `validate:"required,stellar_address,startswith=G"` // simulation source for read-only calls
	DefaultTimeout        time.Duration `validate:"gt=0"`                                  // how long to wait for finality
	MaxRetries            uint
	BaseFee               int64         `validate:"gte=0"`
	PollInterval          time.Duration `validate:"gt=0"`
	RetryBaseDelay        time.Duration `validate:"gte=0"`
	RetryMaxJitter        time.Duration `validate:"gte=0"`
	EventsLookback        uint32        // ledgers scanned back from the latest one when enumerating by events
	StreamCountMethod     string        // contract function returning the number of streams, empty to always scan events
	ScanConcurrency       int           `validate:"gte=1"` // get_stream queries GetStreams keeps in flight
}

// DefaultConfig returns the settings used when a field is not configured.
func DefaultConfig() Config {
	return Config{
		DefaultTimeout:    30 * time.Second,
		MaxRetries:        3,
		BaseFee:           100,
		PollInterval:      time.Second,
		RetryBaseDelay:    time.Second,
		RetryMaxJitter:    250 * time.Millisecond,
		EventsLookback:    17280,
		StreamCountMethod: "stream_count",
		ScanConcurrency:   1,
	}
}

type service struct {
	cfg Config

	ledger   Ledger
	events   Events
	pipeline txpipeline.Service

	retry retry.Retry
}

// Compile-time assertion that service implements the Service interface.
var _ Service = (*service)(nil)

// New creates a Service from cfg. Contract calls go through pipeline, account
// lookups through ledger and stream enumeration falls back to events.
func New(cfg Config, ledger Ledger, events Events, pipeline txpipeline.Service) *service {
	return &service{
		cfg:      cfg,
		ledger:   ledger,
		events:   events,
		pipeline: pipeline,
		retry:    newRetry(cfg),
	}
}

// PipelineOptions translates cfg into the options of the transaction
// pipeline backing a Service.
func PipelineOptions(cfg Config) []txpipeline.Option {
	return []txpipeline.Option{
		txpipeline.WithNetworkPassphrase(cfg.NetworkPassphrase),
		txpipeline.WithBaseFee(cfg.BaseFee),
		txpipeline.WithPollInterval(cfg.PollInterval),
		txpipeline.WithPollTimeout(cfg.DefaultTimeout),
	}
}
