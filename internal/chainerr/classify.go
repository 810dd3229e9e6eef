package chainerr

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"

	transporthttp "github.com/gabapcia/streampay/internal/pkg/transport/http"
	"github.com/gabapcia/streampay/internal/pkg/transport/jsonrpc"
)

// JSON-RPC 2.0 error codes.
const (
	rpcParseError     = -32700
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
	rpcInternalError  = -32603
	rpcServerErrorMin = -32099
	rpcServerErrorMax = -32000
)

var (
	networkKeywords = []string{
		"network",
		"fetch failed",
		"connection refused",
		"connection reset",
		"econnrefused",
		"enotfound",
		"no such host",
		"socket hang up",
		"broken pipe",
	}

	timeoutKeywords = []string{
		"timeout",
		"timed out",
		"deadline exceeded",
		"service unavailable",
		"bad gateway",
		"internal server error",
		"too many requests",
	}

	insufficientKeywords = []string{
		"insufficient",
		"underfunded",
	}

	serverStatusPattern    = regexp.MustCompile(`\b5\d\d\b`)
	accountNotFoundPattern = regexp.MustCompile(`(?i)account\b.*\bnot\s+found|not\s+found\b.*\baccount`)
	accountIDPattern       = regexp.MustCompile(`\b[GC][A-Z2-7]{55}\b`)
)

// Classify maps err onto a typed failure. An error that already is (or wraps)
// an Error is returned unchanged, so Classify is idempotent. Otherwise typed
// transport errors are inspected first, then the message text in this order:
// connectivity, timeout or 5xx, missing account, insufficient funds, and
// structured result codes. Anything else becomes an UnknownError holding err.
//
// The keyword matching is a heuristic and can misfile unrelated messages
// (any text mentioning "insufficient" is an InsufficientFundsError). The
// UnknownError fallback always keeps the original error.
func Classify(err error) Error {
	if err == nil {
		return nil
	}

	if typed, ok := as(err); ok {
		return typed
	}

	if typed := classifyTransport(err); typed != nil {
		return typed
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, networkKeywords):
		return &NetworkError{Message: "connectivity failure", Err: err}
	case containsAny(msg, timeoutKeywords) || serverStatusPattern.MatchString(msg):
		return &NetworkError{Message: "request timed out or server unavailable", Err: err}
	case accountNotFoundPattern.MatchString(msg):
		return &AccountNotFoundError{AccountID: accountIDPattern.FindString(err.Error())}
	case containsAny(msg, insufficientKeywords):
		return &InsufficientFundsError{}
	}

	if txErr := rejectionOf(err); txErr != nil {
		return txErr
	}

	return &UnknownError{Err: err}
}

// classifyTransport handles errors whose type already tells what happened.
func classifyTransport(err error) Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Message: "request timed out", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &NetworkError{Message: "connectivity failure", Err: err}
	}

	var statusErr *transporthttp.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode >= http.StatusInternalServerError || statusErr.StatusCode == http.StatusTooManyRequests {
			return &NetworkError{Message: "server unavailable", Err: err}
		}
	}

	var providerErr *jsonrpc.ProviderError
	if errors.As(err, &providerErr) {
		return classifyProvider(providerErr, err)
	}

	return nil
}

// classifyProvider maps a JSON-RPC error object. Request-level faults become
// a non-retryable TransactionError, server faults a NetworkError. Other codes
// are left to the message heuristics.
func classifyProvider(providerErr *jsonrpc.ProviderError, err error) Error {
	switch code := providerErr.Code; {
	case code == rpcParseError, code == rpcInvalidRequest, code == rpcMethodNotFound, code == rpcInvalidParams:
		return &TransactionError{Message: "rpc server rejected the request: " + providerErr.Message, RPCCode: code}
	case code == rpcInternalError, code >= rpcServerErrorMin && code <= rpcServerErrorMax:
		return &NetworkError{Message: "rpc server error", Err: err}
	default:
		return nil
	}
}

// horizonProblem is the subset of a ledger API problem document that carries
// transaction result codes.
type horizonProblem struct {
	Extras struct {
		Hash        string       `json:"hash"`
		ResultCodes *ResultCodes `json:"result_codes"`
		ResultXDR   string       `json:"result_xdr"`
	} `json:"extras"`
}

// rejectionOf reads structured result codes from a ledger API error body.
func rejectionOf(err error) *TransactionError {
	var statusErr *transporthttp.StatusError
	if !errors.As(err, &statusErr) {
		return nil
	}

	var problem horizonProblem
	if json.Unmarshal(statusErr.Body, &problem) != nil {
		return nil
	}

	codes := problem.Extras.ResultCodes
	if codes == nil || codes.Transaction == "" {
		return nil
	}

	return &TransactionError{
		Message:     "rejected by the network",
		TxHash:      problem.Extras.Hash,
		ResultCodes: codes,
		ResultXDR:   problem.Extras.ResultXDR,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}
