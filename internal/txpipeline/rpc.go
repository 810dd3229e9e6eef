package txpipeline

import (
	"context"
	"encoding/json"
)

// SendStatus is the immediate answer of the network to a submission.
type SendStatus string

const (
	SendStatusPending       SendStatus = "PENDING"
	SendStatusDuplicate     SendStatus = "DUPLICATE"
	SendStatusTryAgainLater SendStatus = "TRY_AGAIN_LATER"
	SendStatusError         SendStatus = "ERROR"
)

// TxStatus is the on-chain status of a submitted transaction.
type TxStatus string

const (
	TxStatusNotFound TxStatus = "NOT_FOUND"
	TxStatusSuccess  TxStatus = "SUCCESS"
	TxStatusFailed   TxStatus = "FAILED"
)

// SimulationResult is the outcome of one host function in a simulation.
type SimulationResult struct {
	ReturnValueXDR string   // base64 ScVal returned by the call
	AuthXDR        []string // base64 SorobanAuthorizationEntry values to attach
}

// Simulation is the response of a dry run. Error is set when the simulated
// execution failed; Raw keeps the response as received.
type Simulation struct {
	TransactionDataXDR string // base64 SorobanTransactionData (footprint and resources)
	MinResourceFee     int64  // resource fee in stroops on top of the inclusion fee
	Results            []SimulationResult
	Error              string
	RestorePreamble    bool // archived entries must be restored before invoking
	LatestLedger       uint32
	Raw                json.RawMessage
}

// Submission is the response to sending a signed envelope.
type Submission struct {
	Hash           string
	Status         SendStatus
	ErrorResultXDR string // base64 TransactionResult, set for SendStatusError
}

// TransactionStatus is a poll result for a submitted transaction.
type TransactionStatus struct {
	Status         TxStatus
	Ledger         uint32
	ResultXDR      string // base64 TransactionResult
	ReturnValueXDR string // base64 ScVal returned by the invocation, if any
}

// AccountSource reads the current sequence number of an account.
type AccountSource interface {
	AccountSequence(ctx context.Context, accountID string) (int64, error)
}

// RPC is the subset of the Soroban RPC API used by the pipeline.
type RPC interface {
	SimulateTransaction(ctx context.Context, envelopeXDR string) (Simulation, error)
	SendTransaction(ctx context.Context, envelopeXDR string) (Submission, error)
	GetTransaction(ctx context.Context, hash string) (TransactionStatus, error)
}

// Signer signs transaction envelopes on behalf of one account. Key material
// never reaches the pipeline; it only sees the signed envelope.
type Signer interface {
	// Address is the account that pays for and authorizes the invocations.
	Address() string

	// Sign returns envelopeXDR signed for the network identified by networkPassphrase.
	Sign(ctx context.Context, envelopeXDR, networkPassphrase string) (string, error)
}
