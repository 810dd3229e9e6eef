// Package chainerr defines the typed failures surfaced by streampay and the
// classifier that maps untyped lower-level errors onto them.
//
// Every failure kind is its own struct implementing Error. Callers switch on
// Kind() or use errors.As with the concrete type to read its fields.
package chainerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
)

// Kind is the discriminant of a typed failure.
type Kind string

const (
	KindNetwork            Kind = "NETWORK_ERROR"
	KindTransaction        Kind = "TRANSACTION_ERROR"
	KindTransactionTimeout Kind = "TRANSACTION_TIMEOUT"
	KindContract           Kind = "CONTRACT_ERROR"
	KindSimulation         Kind = "SIMULATION_ERROR"
	KindAccountNotFound    Kind = "ACCOUNT_NOT_FOUND"
	KindStreamNotFound     Kind = "STREAM_NOT_FOUND"
	KindInsufficientFunds  Kind = "INSUFFICIENT_FUNDS"
	KindValidation         Kind = "VALIDATION_ERROR"
	KindUnknown            Kind = "UNKNOWN_ERROR"
)

// Error is implemented by every typed failure.
type Error interface {
	error
	Kind() Kind
}

var (
	_ Error = (*NetworkError)(nil)
	_ Error = (*TransactionError)(nil)
	_ Error = (*TransactionTimeoutError)(nil)
	_ Error = (*ContractError)(nil)
	_ Error = (*SimulationError)(nil)
	_ Error = (*AccountNotFoundError)(nil)
	_ Error = (*StreamNotFoundError)(nil)
	_ Error = (*InsufficientFundsError)(nil)
	_ Error = (*ValidationError)(nil)
	_ Error = (*UnknownError)(nil)
)

// NetworkError is a transport or connectivity failure.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Kind() Kind    { return KindNetwork }
func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Error() string {
	return withCause("network error: "+e.Message, e.Err)
}

// ResultCodes are the transaction and per-operation result codes returned
// by the network for a rejected transaction.
type ResultCodes struct {
	Transaction string   `json:"transaction"`
	Operations  []string `json:"operations,omitempty"`
}

func (r *ResultCodes) String() string {
	if r == nil {
		return ""
	}

	if len(r.Operations) == 0 {
		return r.Transaction
	}

	return r.Transaction + " [" + strings.Join(r.Operations, ", ") + "]"
}

// TransactionError is an on-chain rejection. TxHash, ResultCodes and ResultXDR
// are set when the network reported them. RPCCode is set when the RPC server
// refused the request itself as malformed; such a request is never retried.
type TransactionError struct {
	Message     string
	TxHash      string
	ResultCodes *ResultCodes
	ResultXDR   string
	RPCCode     int
}

func (e *TransactionError) Kind() Kind { return KindTransaction }

func (e *TransactionError) Error() string {
	var b strings.Builder
	b.WriteString("transaction error")
	if e.TxHash != "" {
		b.WriteString(" (" + e.TxHash + ")")
	}
	if e.RPCCode != 0 {
		fmt.Fprintf(&b, ": rpc code %d", e.RPCCode)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if codes := e.ResultCodes.String(); codes != "" {
		b.WriteString(": " + codes)
	}

	return b.String()
}

// TransactionTimeoutError reports that finality polling gave up before the
// transaction reached a terminal status. The transaction may still be
// applied; callers must look it up by TxHash before resubmitting.
type TransactionTimeoutError struct {
	TxHash  string
	Timeout time.Duration
}

func (e *TransactionTimeoutError) Kind() Kind { return KindTransactionTimeout }

func (e *TransactionTimeoutError) Error() string {
	return fmt.Sprintf("transaction %s not confirmed within %s; check its status by hash before retrying", e.TxHash, e.Timeout)
}

// As lets a timeout be inspected as the TransactionError it specializes.
func (e *TransactionTimeoutError) As(target any) bool {
	t, ok := target.(**TransactionError)
	if !ok {
		return false
	}

	*t = &TransactionError{TxHash: e.TxHash, Message: "confirmation timed out"}
	return true
}

// ContractError reports an invocation that could not be dispatched or that
// the contract rejected. Code is the contract-defined error number, or zero.
type ContractError struct {
	ContractID string
	Method     string
	Code       uint32
	Err        error
}

func (e *ContractError) Kind() Kind    { return KindContract }
func (e *ContractError) Unwrap() error { return e.Err }

func (e *ContractError) Error() string {
	msg := fmt.Sprintf("contract error calling %s on %s", e.Method, e.ContractID)
	if e.Code != 0 {
		msg += fmt.Sprintf(": #%d %s", e.Code, ContractCodeName(e.Code))
	}

	return withCause(msg, e.Err)
}

// SimulationError is a failed pre-flight execution. Result is the raw
// simulation response for diagnostics.
type SimulationError struct {
	Message string
	Result  json.RawMessage
}

func (e *SimulationError) Kind() Kind { return KindSimulation }

func (e *SimulationError) Error() string {
	return "simulation failed: " + e.Message
}

// AccountNotFoundError reports an account that does not exist on the ledger,
// usually because it was never funded.
type AccountNotFoundError struct {
	AccountID string
}

func (e *AccountNotFoundError) Kind() Kind { return KindAccountNotFound }

func (e *AccountNotFoundError) Error() string {
	if e.AccountID == "" {
		return "account not found"
	}

	return "account not found: " + e.AccountID
}

// StreamNotFoundError reports a stream id unknown to the contract.
type StreamNotFoundError struct {
	StreamID uint64
}

func (e *StreamNotFoundError) Kind() Kind { return KindStreamNotFound }

func (e *StreamNotFoundError) Error() string {
	return fmt.Sprintf("stream %d not found", e.StreamID)
}

// InsufficientFundsError reports that an operation needs more than is
// available. Either amount may be unset when the source did not report it.
type InsufficientFundsError struct {
	Required  sdkmath.Int
	Available sdkmath.Int
}

func (e *InsufficientFundsError) Kind() Kind { return KindInsufficientFunds }

func (e *InsufficientFundsError) Error() string {
	if e.Required.IsNil() || e.Available.IsNil() {
		return "insufficient funds"
	}

	return fmt.Sprintf("insufficient funds: required %s, available %s", e.Required, e.Available)
}

// ValidationError reports the first violated precondition of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Kind() Kind { return KindValidation }

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UnknownError wraps a failure no other kind matched. Err is kept intact so
// no diagnostic information is lost.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Kind() Kind    { return KindUnknown }
func (e *UnknownError) Unwrap() error { return e.Err }

func (e *UnknownError) Error() string {
	if e.Err == nil {
		return "unknown error"
	}

	return e.Err.Error()
}

// KindOf returns the kind of err after classification, or "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	return Classify(err).Kind()
}

// IsRetryable reports whether repeating the operation that produced err may
// succeed. Requests that are invalid, refer to missing entities, lack funds or
// whose outcome is unknown are never retried. Neither are contract errors
// carrying a contract-defined code nor requests the RPC server refused.
func IsRetryable(err error) bool {
	var contractErr *ContractError
	if errors.As(err, &contractErr) && contractErr.Code != 0 {
		return false
	}

	var txErr *TransactionError
	if errors.As(err, &txErr) && txErr.RPCCode != 0 {
		return false
	}

	switch KindOf(err) {
	case KindValidation, KindInsufficientFunds, KindAccountNotFound, KindStreamNotFound, KindTransactionTimeout, "":
		return false
	default:
		return true
	}
}

func withCause(msg string, err error) string {
	if err == nil {
		return msg
	}

	return msg + ": " + err.Error()
}

// as is errors.As for the Error interface.
func as(err error) (Error, bool) {
	var typed Error
	if errors.As(err, &typed) {
		return typed, true
	}

	return nil, false
}
