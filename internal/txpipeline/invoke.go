package txpipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/streampay/internal/chainerr"
	"github.com/gabapcia/streampay/internal/pkg/logger"
	"github.com/gabapcia/streampay/internal/pkg/x/chflow"
	"github.com/gabapcia/streampay/internal/stellar/scval"

	"github.com/stellar/go-stellar-sdk/txnbuild"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const outcomeSuccess = "SUCCESS"

// start opens the span and the derived logger shared by Invoke and Query.
func (s *service) start(ctx context.Context, spanName string, inv Invocation) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.String("contract.id", inv.ContractID),
		attribute.String("contract.method", inv.Method),
	))

	return logger.Derive(ctx, "contract.id", inv.ContractID, "contract.method", inv.Method), span
}

// finish classifies err, records it and closes the span.
func (s *service) finish(ctx context.Context, span trace.Span, operation string, err error) error {
	defer span.End()

	outcome := outcomeSuccess
	if err != nil {
		typed := chainerr.Classify(err)
		outcome = string(typed.Kind())
		err = typed

		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		logger.Error(ctx, operation+" failed", "error.kind", outcome, "error", err)
	}

	if s.invocations != nil {
		s.invocations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		))
	}

	return err
}

// prepare fetches the sequence of source and runs the simulation of inv.
func (s *service) prepare(ctx context.Context, source string, inv Invocation) (*txnbuild.InvokeHostFunction, int64, Simulation, error) {
	op, err := invokeOperation(inv)
	if err != nil {
		return nil, 0, Simulation{}, err
	}

	seq, err := s.accounts.AccountSequence(ctx, source)
	if err != nil {
		return nil, 0, Simulation{}, err
	}

	tx, err := s.newTransaction(source, seq, op, s.cfg.baseFee)
	if err != nil {
		return nil, 0, Simulation{}, err
	}
	logger.Debug(ctx, "invocation built", "source", source, "sequence", seq+1)

	envelope, err := tx.Base64()
	if err != nil {
		return nil, 0, Simulation{}, fmt.Errorf("encode transaction: %w", err)
	}

	sim, err := s.rpc.SimulateTransaction(ctx, envelope)
	if err != nil {
		return nil, 0, Simulation{}, err
	}

	if sim.Error != "" {
		return nil, 0, sim, &chainerr.SimulationError{Message: sim.Error, Result: sim.Raw}
	}

	if sim.RestorePreamble {
		return nil, 0, sim, &chainerr.SimulationError{Message: "archived ledger entries must be restored first", Result: sim.Raw}
	}
	logger.Debug(ctx, "invocation simulated", "min_resource_fee", sim.MinResourceFee, "latest_ledger", sim.LatestLedger)

	return op, seq, sim, nil
}

// Query implements the Service interface.
func (s *service) Query(ctx context.Context, source string, inv Invocation) (result any, err error) {
	ctx, span := s.start(ctx, "txpipeline.Query", inv)
	defer func() { err = s.finish(ctx, span, "query", err) }()

	_, _, sim, err := s.prepare(ctx, source, inv)
	if err != nil {
		return nil, err
	}

	return sim.returnValue()
}

// Invoke implements the Service interface.
func (s *service) Invoke(ctx context.Context, signer Signer, inv Invocation) (out Outcome, err error) {
	ctx, span := s.start(ctx, "txpipeline.Invoke", inv)
	defer func() { err = s.finish(ctx, span, "invoke", err) }()

	source := signer.Address()
	op, seq, sim, err := s.prepare(ctx, source, inv)
	if err != nil {
		return Outcome{}, err
	}

	fee, err := s.assemble(op, sim)
	if err != nil {
		return Outcome{}, err
	}

	tx, err := s.newTransaction(source, seq, op, fee)
	if err != nil {
		return Outcome{}, err
	}
	logger.Debug(ctx, "invocation assembled", "fee", fee)

	envelope, err := tx.Base64()
	if err != nil {
		return Outcome{}, fmt.Errorf("encode transaction: %w", err)
	}

	hash, err := tx.HashHex(s.cfg.networkPassphrase)
	if err != nil {
		return Outcome{}, fmt.Errorf("hash transaction: %w", err)
	}

	signed, err := signer.Sign(ctx, envelope, s.cfg.networkPassphrase)
	if err != nil {
		return Outcome{}, fmt.Errorf("sign transaction: %w", err)
	}
	logger.Debug(ctx, "invocation signed", "tx.hash", hash)

	hash, err = s.submit(ctx, hash, signed)
	if err != nil {
		return Outcome{}, err
	}
	span.SetAttributes(attribute.String("tx.hash", hash))

	status, err := s.poll(ctx, hash)
	if err != nil {
		return Outcome{}, err
	}

	if status.Status == TxStatusFailed {
		return Outcome{}, &chainerr.TransactionError{
			Message:     "transaction failed on-chain",
			TxHash:      hash,
			ResultCodes: resultCodes(status.ResultXDR),
			ResultXDR:   status.ResultXDR,
		}
	}

	out = Outcome{Hash: hash, Ledger: status.Ledger}
	if status.ReturnValueXDR != "" {
		if out.ReturnValue, err = scval.DecodeBase64(status.ReturnValueXDR); err != nil {
			return Outcome{}, err
		}
	}

	logger.Info(ctx, "invocation confirmed", "tx.hash", hash, "ledger", status.Ledger)
	return out, nil
}

// submit sends the signed envelope and returns the hash to poll for. When the
// send fails at the network level the server may still have accepted the
// envelope, so the locally computed hash is returned for polling; if it never
// shows up, polling ends in a TransactionTimeoutError, which is not retried.
func (s *service) submit(ctx context.Context, hash, signed string) (string, error) {
	sub, err := s.rpc.SendTransaction(ctx, signed)
	if err != nil {
		if chainerr.KindOf(err) != chainerr.KindNetwork {
			return "", err
		}

		logger.Warn(ctx, "submission outcome unknown, polling its hash", "tx.hash", hash, "error", err)
		return hash, nil
	}

	if sub.Hash != "" {
		hash = sub.Hash
	}
	logger.Debug(ctx, "invocation submitted", "tx.hash", hash, "status", sub.Status)

	switch sub.Status {
	case SendStatusPending, SendStatusDuplicate:
		return hash, nil
	case SendStatusError:
		return "", &chainerr.TransactionError{
			Message:     "submission rejected",
			TxHash:      hash,
			ResultCodes: resultCodes(sub.ErrorResultXDR),
			ResultXDR:   sub.ErrorResultXDR,
		}
	case SendStatusTryAgainLater:
		return "", &chainerr.NetworkError{Message: "network asked to try again later"}
	default:
		return "", &chainerr.UnknownError{Err: fmt.Errorf("unexpected submission status %q for %s", sub.Status, hash)}
	}
}

// poll queries hash every pollInterval until the transaction is final. When
// the poll timeout elapses or ctx is done it fails with a
// TransactionTimeoutError. Lookup errors are logged and polling goes on; a
// status other than NOT_FOUND, SUCCESS or FAILED ends it with an UnknownError.
func (s *service) poll(ctx context.Context, hash string) (TransactionStatus, error) {
	pollCtx, cancel := context.WithTimeout(ctx, s.cfg.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(s.cfg.pollInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		status, err := s.rpc.GetTransaction(pollCtx, hash)
		switch {
		case err != nil:
			logger.Warn(ctx, "transaction lookup failed", "tx.hash", hash, "attempt", attempt, "error", err)
		case status.Status == TxStatusSuccess || status.Status == TxStatusFailed:
			logger.Debug(ctx, "transaction final", "tx.hash", hash, "status", status.Status, "attempt", attempt)
			return status, nil
		case status.Status == TxStatusNotFound:
			logger.Debug(ctx, "transaction pending", "tx.hash", hash, "attempt", attempt)
		default:
			return TransactionStatus{}, &chainerr.UnknownError{Err: fmt.Errorf("unexpected status %q for transaction %s", status.Status, hash)}
		}

		if _, ok := chflow.Receive(pollCtx, ticker.C); !ok {
			return TransactionStatus{}, &chainerr.TransactionTimeoutError{TxHash: hash, Timeout: s.cfg.pollTimeout}
		}
	}
}
