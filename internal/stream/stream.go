// Package stream holds the domain model shared by the streampay facade and
// its adapters: payment streams, ledger accounts and transaction results.
package stream

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// ErrInvalidStream is returned when a decoded stream breaks its invariants.
var ErrInvalidStream = errors.New("invalid stream")

// Status is the lifecycle state of a stream.
type Status string

const (
	StatusActive    Status = "Active"
	StatusPaused    Status = "Paused"
	StatusCanceled  Status = "Canceled"
	StatusCompleted Status = "Completed"
)

// Stream is a vesting schedule held by the payment-stream contract. Amounts
// are in the token's smallest unit and times are Unix seconds.
type Stream struct {
	ID              uint64      `json:"id"`
	Sender          string      `json:"sender"`          // account that funded the stream
	Recipient       string      `json:"recipient"`       // account the stream vests to
	Token           string      `json:"token"`           // token contract address
	TotalAmount     sdkmath.Int `json:"totalAmount"`     // escrowed amount
	WithdrawnAmount sdkmath.Int `json:"withdrawnAmount"` // amount already paid out
	StartTime       uint64      `json:"startTime"`
	EndTime         uint64      `json:"endTime"`
	Status          Status      `json:"status"`
}

// Validate checks 0 <= WithdrawnAmount <= TotalAmount and StartTime < EndTime.
func (s Stream) Validate() error {
	if s.TotalAmount.IsNil() || s.WithdrawnAmount.IsNil() {
		return fmt.Errorf("%w: missing amounts", ErrInvalidStream)
	}

	if s.WithdrawnAmount.IsNegative() || s.WithdrawnAmount.GT(s.TotalAmount) {
		return fmt.Errorf("%w: withdrawn amount %s outside [0, %s]", ErrInvalidStream, s.WithdrawnAmount, s.TotalAmount)
	}

	if s.StartTime >= s.EndTime {
		return fmt.Errorf("%w: start time %d is not before end time %d", ErrInvalidStream, s.StartTime, s.EndTime)
	}

	return nil
}

// Remaining returns the amount not yet withdrawn.
func (s Stream) Remaining() sdkmath.Int {
	return s.TotalAmount.Sub(s.WithdrawnAmount)
}

// Involves reports whether addr is the sender or the recipient of s.
func (s Stream) Involves(addr string) bool {
	return s.Sender == addr || s.Recipient == addr
}

// TransactionResult is the outcome of a submitted invocation. Result is nil
// when the invocation returns nothing.
type TransactionResult[T any] struct {
	Hash    string `json:"hash"`
	Success bool   `json:"success"`
	Result  *T     `json:"result,omitempty"`
	Ledger  uint32 `json:"ledger,omitempty"`
}

// ContractEvent is an event emitted by a contract, with topics and value
// already decoded.
type ContractEvent struct {
	ID         string
	Ledger     uint32
	ContractID string
	Topics     []any
	Value      any
}
