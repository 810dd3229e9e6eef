package sorobanrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/stellar/go-stellar-sdk/xdr"
)

type (
	// SimulateHostFunctionResult is one entry of a simulation's results array.
	SimulateHostFunctionResult struct {
		Auth []string `json:"auth"`
		XDR  string   `json:"xdr"`
	}

	// RestorePreamble is present when the invocation touches archived entries.
	RestorePreamble struct {
		MinResourceFee  string `json:"minResourceFee"`
		TransactionData string `json:"transactionData"`
	}

	// SimulateTransactionResponse is the result of simulateTransaction.
	SimulateTransactionResponse struct {
		TransactionData string                       `json:"transactionData"`
		MinResourceFee  string                       `json:"minResourceFee"`
		Results         []SimulateHostFunctionResult `json:"results"`
		Error           string                       `json:"error"`
		RestorePreamble *RestorePreamble             `json:"restorePreamble"`
		LatestLedger    uint32                       `json:"latestLedger"`
	}

	// SendTransactionResponse is the result of sendTransaction.
	SendTransactionResponse struct {
		Hash           string `json:"hash"`
		Status         string `json:"status"`
		ErrorResultXDR string `json:"errorResultXdr"`
		LatestLedger   uint32 `json:"latestLedger"`
	}

	// GetTransactionResponse is the result of getTransaction.
	GetTransactionResponse struct {
		Status        string `json:"status"`
		Ledger        uint32 `json:"ledger"`
		ResultXDR     string `json:"resultXdr"`
		ResultMetaXDR string `json:"resultMetaXdr"`
		ReturnValue   string `json:"returnValue"`
		LatestLedger  uint32 `json:"latestLedger"`
	}
)

// toSimulation converts the response to a txpipeline.Simulation, keeping raw
// as the verbatim payload.
func (r SimulateTransactionResponse) toSimulation(raw json.RawMessage) (txpipeline.Simulation, error) {
	sim := txpipeline.Simulation{
		TransactionDataXDR: r.TransactionData,
		Error:              r.Error,
		RestorePreamble:    r.RestorePreamble != nil,
		LatestLedger:       r.LatestLedger,
		Raw:                raw,
	}

	if r.MinResourceFee != "" {
		fee, err := strconv.ParseInt(r.MinResourceFee, 10, 64)
		if err != nil {
			return txpipeline.Simulation{}, fmt.Errorf("parse minResourceFee: %w", err)
		}
		sim.MinResourceFee = fee
	}

	for _, res := range r.Results {
		sim.Results = append(sim.Results, txpipeline.SimulationResult{
			ReturnValueXDR: res.XDR,
			AuthXDR:        res.Auth,
		})
	}

	return sim, nil
}

// toTransactionStatus converts the response to a txpipeline.TransactionStatus.
// The return value comes from the returnValue field when the server sends
// it, otherwise from the Soroban section of the result meta.
func (r GetTransactionResponse) toTransactionStatus() (txpipeline.TransactionStatus, error) {
	status := txpipeline.TransactionStatus{
		Status:         txpipeline.TxStatus(r.Status),
		Ledger:         r.Ledger,
		ResultXDR:      r.ResultXDR,
		ReturnValueXDR: r.ReturnValue,
	}

	if status.ReturnValueXDR != "" || r.ResultMetaXDR == "" {
		return status, nil
	}

	returnValue, err := returnValueFromMeta(r.ResultMetaXDR)
	if err != nil {
		return txpipeline.TransactionStatus{}, err
	}

	status.ReturnValueXDR = returnValue
	return status, nil
}

// returnValueFromMeta extracts the invocation's return value from a base64
// TransactionMeta. It returns "" when the meta carries none.
func returnValueFromMeta(metaXDR string) (string, error) {
	var meta xdr.TransactionMeta
	if err := xdr.SafeUnmarshalBase64(metaXDR, &meta); err != nil {
		return "", fmt.Errorf("decode result meta: %w", err)
	}

	var value *xdr.ScVal
	switch {
	case meta.V3 != nil && meta.V3.SorobanMeta != nil:
		value = &meta.V3.SorobanMeta.ReturnValue
	case meta.V4 != nil && meta.V4.SorobanMeta != nil:
		value = meta.V4.SorobanMeta.ReturnValue
	}

	if value == nil {
		return "", nil
	}

	return xdr.MarshalBase64(*value)
}

// SimulateTransaction implements the txpipeline.RPC interface.
func (c *client) SimulateTransaction(ctx context.Context, envelopeXDR string) (txpipeline.Simulation, error) {
	data, err := c.conn.Call(ctx, "simulateTransaction", map[string]any{"transaction": envelopeXDR})
	if err != nil {
		return txpipeline.Simulation{}, err
	}

	var res SimulateTransactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txpipeline.Simulation{}, err
	}

	return res.toSimulation(data)
}

// SendTransaction implements the txpipeline.RPC interface.
func (c *client) SendTransaction(ctx context.Context, envelopeXDR string) (txpipeline.Submission, error) {
	data, err := c.conn.Call(ctx, "sendTransaction", map[string]any{"transaction": envelopeXDR})
	if err != nil {
		return txpipeline.Submission{}, err
	}

	var res SendTransactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txpipeline.Submission{}, err
	}

	return txpipeline.Submission{
		Hash:           res.Hash,
		Status:         txpipeline.SendStatus(res.Status),
		ErrorResultXDR: res.ErrorResultXDR,
	}, nil
}

// GetTransaction implements the txpipeline.RPC interface.
func (c *client) GetTransaction(ctx context.Context, hash string) (txpipeline.TransactionStatus, error) {
	data, err := c.conn.Call(ctx, "getTransaction", map[string]any{"hash": hash})
	if err != nil {
		return txpipeline.TransactionStatus{}, err
	}

	var res GetTransactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txpipeline.TransactionStatus{}, err
	}

	return res.toTransactionStatus()
}
