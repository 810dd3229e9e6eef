package streampay

import (
	"context"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/pkg/logger"
	"github.com/gabapcia/streampay/internal/pkg/resilience/retry"
	"github.com/gabapcia/streampay/internal/stream"
	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// noStream is passed as the stream id of calls that do not target a stream.
const noStream = 0

func newRetry(cfg Config) retry.Retry {
	return retry.New(
		retry.WithMaxRetries(cfg.MaxRetries),
		retry.WithDelay(cfg.RetryBaseDelay),
		retry.WithMaxJitter(cfg.RetryMaxJitter),
		retry.WithRetryIf(chainerr.IsRetryable),
	)
}

// fail returns err as a chainerr.Error, keeping nil as nil.
func fail(err error) error {
	if err == nil {
		return nil
	}

	return chainerr.Classify(err)
}

func (s *service) streamCall(method string, args ...xdr.ScVal) txpipeline.Invocation {
	return txpipeline.Invocation{ContractID: s.cfg.StreamContractID, Method: method, Args: args}
}

func (s *service) distributorCall(method string, args ...xdr.ScVal) (txpipeline.Invocation, error) {
	if s.cfg.DistributorContractID == "" {
		return txpipeline.Invocation{}, &chainerr.ValidationError{Field: "distributorContractId", Message: "is not configured"}
	}

	return txpipeline.Invocation{ContractID: s.cfg.DistributorContractID, Method: method, Args: args}, nil
}

// contractFailure maps a contract-defined error number found in err onto the
// matching typed failure. streamID is reported when the stream is missing.
func contractFailure(err error, inv txpipeline.Invocation, streamID uint64) error {
	code, ok := chainerr.ContractCode(err)
	if !ok {
		return err
	}

	switch code {
	case chainerr.CodeStreamNotFound:
		return &chainerr.StreamNotFoundError{StreamID: streamID}
	case chainerr.CodeInsufficientWithdrawable:
		return &chainerr.InsufficientFundsError{}
	default:
		return &chainerr.ContractError{ContractID: inv.ContractID, Method: inv.Method, Code: code, Err: err}
	}
}

// query runs a read-only call under the retry policy.
func (s *service) query(ctx context.Context, inv txpipeline.Invocation, streamID uint64) (any, error) {
	return retry.Do(ctx, s.retry, func() (any, error) {
		v, err := s.pipeline.Query(ctx, s.cfg.SourceAccount, inv)
		if err != nil {
			return nil, contractFailure(err, inv, streamID)
		}

		return v, nil
	})
}

// invoke submits a state-changing call under the retry policy.
func (s *service) invoke(ctx context.Context, signer txpipeline.Signer, inv txpipeline.Invocation, streamID uint64) (txpipeline.Outcome, error) {
	return retry.Do(ctx, s.retry, func() (txpipeline.Outcome, error) {
		out, err := s.pipeline.Invoke(ctx, signer, inv)
		if err != nil {
			return txpipeline.Outcome{}, contractFailure(err, inv, streamID)
		}

		return out, nil
	})
}

// invokeVoid runs a call whose contract function returns nothing.
func (s *service) invokeVoid(ctx context.Context, signer txpipeline.Signer, inv txpipeline.Invocation, streamID uint64) (stream.TransactionResult[struct{}], error) {
	if signer == nil {
		return stream.TransactionResult[struct{}]{}, errSignerRequired
	}

	out, err := s.invoke(ctx, signer, inv, streamID)
	if err != nil {
		return stream.TransactionResult[struct{}]{}, fail(err)
	}

	logger.Info(ctx, "contract call confirmed", "contract.method", inv.Method, "tx.hash", out.Hash, "ledger", out.Ledger)
	return stream.TransactionResult[struct{}]{Hash: out.Hash, Success: true, Ledger: out.Ledger}, nil
}
